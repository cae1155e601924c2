package protocol

import (
	"encoding/json"
	"errors"
)

// ErrEmptyPayload 事件带有类型但没有 payload
var ErrEmptyPayload = errors.New("事件缺少 payload")

// --- 入站：原始帧 → 事件 ---

// Decode 将一帧原始字节解析为事件信封。
// 只校验信封本身，payload 留给各处理器用 ParsePayload 解析
func Decode(data []byte) (*Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// ParsePayload 将信封中的 payload 解析为具体事件结构
func ParsePayload[T any](msg *Message) (*T, error) {
	if len(msg.Payload) == 0 {
		return nil, ErrEmptyPayload
	}
	var payload T
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// --- 出站：事件 → 帧 ---

// NewMessage 构造事件信封，payload 为 nil 时只带类型
func NewMessage(msgType MessageType, payload any) (*Message, error) {
	msg := &Message{Type: msgType}
	if payload == nil {
		return msg, nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	msg.Payload = data
	return msg, nil
}

// MustNewMessage 构造事件信封，编码失败时 panic。
// 只用于服务端自有的 payload 结构，它们总是可序列化的
func MustNewMessage(msgType MessageType, payload any) *Message {
	msg, err := NewMessage(msgType, payload)
	if err != nil {
		panic(err)
	}
	return msg
}

// Encode 将信封编码为单帧 JSON
func (m *Message) Encode() ([]byte, error) {
	return json.Marshal(m)
}
