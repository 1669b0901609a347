package event

const (
	NewMessageOp  = "new_message"
	TypingOp      = "typing"
	ReadReceiptOp = "read_receipt"
)

// NEW MESSAGE EVENT
type NewMessageEvent struct {
	ID       int64  `json:"id" mapstructure:"id"`
	ChatID   string `json:"chat_id" mapstructure:"chat_id"`
	SenderID string `json:"sender_id" mapstructure:"sender_id"`
	Content  string `json:"content" mapstructure:"content"`
}

func (*NewMessageEvent) Op() string {
	return NewMessageOp
}

// TYPING EVENT
type TypingEvent struct {
	ChatID   string `json:"chat_id" mapstructure:"chat_id"`
	SenderID string `json:"sender_id" mapstructure:"sender_id"`
}

func (*TypingEvent) Op() string {
	return TypingOp
}

// READ RECEIPT EVENT
type ReadReceiptEvent struct {
	ChatID     string `json:"chat_id" mapstructure:"chat_id"`
	SenderID   string `json:"sender_id" mapstructure:"sender_id"`
	LastReadID int64  `json:"last_read_id" mapstructure:"last_read_id"`
}

func (*ReadReceiptEvent) Op() string {
	return ReadReceiptOp
}
