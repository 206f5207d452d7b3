package models

// Match links two divers after a mutual right swipe. UserAID and UserBID are
// always stored in sorted order so (X,Y) and (Y,X) resolve to the same record.
type Match struct {
	ID                 string `dynamodbav:"id,omitempty" json:"id,omitempty"`
	UserAID            string `dynamodbav:"userAId" json:"userAId"`
	UserBID            string `dynamodbav:"userBId" json:"userBId"`
	LastMessagePreview string `dynamodbav:"lastMessagePreview,omitempty" json:"lastMessagePreview,omitempty"`
	CreatedAt          string `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// MatchesTable is the table name for matches
const MatchesTable = "Matches"
