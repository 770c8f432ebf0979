package domain

import "time"

// Question is a customer inquiry. Answered starts false and flips to true in
// the same transaction that persists the answer; it never reverts while the
// answer exists.
type Question struct {
	ID        string    `json:"id" bson:"_id"`
	OwnerID   string    `json:"user_id" bson:"owner_id"`
	Username  string    `json:"username" bson:"username"`
	Title     string    `json:"title" bson:"title"`
	Content   string    `json:"content" bson:"content"`
	Answered  bool      `json:"answered" bson:"answered"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Answer is the single admin response to a question (1:1). Any admin may
// answer any question; the authoring admin is recorded but holds no special
// write rights afterwards.
type Answer struct {
	ID         string    `json:"id" bson:"_id"`
	QuestionID string    `json:"question_id" bson:"question_id"`
	OwnerID    string    `json:"user_id" bson:"owner_id"`
	Username   string    `json:"username" bson:"username"`
	Content    string    `json:"content" bson:"content"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}
