package card

// Phrases 共享词库：会议室陈词滥调，所有卡片都从这里抽取
// 长度必须 >= DrawCount，init 中校验
var Phrases = []string{
	"Think outside the box",
	"Synergy",
	"Low-hanging fruit",
	"Circle back",
	"Touch base",
	"Move the needle",
	"Paradigm shift",
	"Take this offline",
	"Deep dive",
	"Bandwidth",
	"Win-win",
	"Best practice",
	"Core competency",
	"Drill down",
	"Game changer",
	"Going forward",
	"It is what it is",
	"Leverage",
	"New normal",
	"On the same page",
	"Pivot",
	"Push the envelope",
	"Quick win",
	"Raise the bar",
	"Secret sauce",
	"Thought leader",
	"Value add",
	"At the end of the day",
	"Boil the ocean",
	"Get the ball rolling",
	"Hit the ground running",
	"Per my last email",
	"Let's parking-lot that",
	"Double-click on that",
	"Single source of truth",
	"Alignment",
}
