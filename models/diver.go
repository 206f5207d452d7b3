package models

// Diver defines the structure for diver profiles
type Diver struct {
	ID           string   `dynamodbav:"id,omitempty" json:"id,omitempty"`
	Name         string   `dynamodbav:"name" json:"name"`
	Location     string   `dynamodbav:"location" json:"location"`
	Level        string   `dynamodbav:"level" json:"level"`
	Experience   int      `dynamodbav:"experience" json:"experience"`
	Bio          string   `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	Image        string   `dynamodbav:"image,omitempty" json:"image,omitempty"`
	Interests    []string `dynamodbav:"interests,omitempty" json:"interests,omitempty"`
	Availability string   `dynamodbav:"availability,omitempty" json:"availability,omitempty"`
	CreatedAt    string   `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// DiversTable is the table name for diver profiles
const DiversTable = "Divers"
