package models

// Swipe is an append-only record of one directional swipe. Swipes are never
// mutated or deleted; duplicates between the same pair are allowed.
type Swipe struct {
	ID        string `dynamodbav:"id,omitempty" json:"id,omitempty"`
	SwiperID  string `dynamodbav:"swiperId" json:"swiperId"`
	TargetID  string `dynamodbav:"targetId" json:"targetId"`
	Direction string `dynamodbav:"direction" json:"direction"`
	CreatedAt string `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// SwipesTable is the table name for swipes
const SwipesTable = "Swipes"
