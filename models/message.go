package models

type Message struct {
	ID        string `dynamodbav:"id,omitempty" json:"id,omitempty"`
	MatchID   string `dynamodbav:"matchId" json:"matchId"`
	SenderID  string `dynamodbav:"senderId" json:"senderId"`
	Content   string `dynamodbav:"content" json:"content"`
	CreatedAt string `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// MessagesTable is the table name for messages
const MessagesTable = "Messages"
