package entity

import "time"

// User is the platform account document, read during broadcast fan-out and
// account deletion.
type User struct {
	ID          string    `firestore:"id" json:"id"`
	Email       string    `firestore:"email" json:"email"`
	DisplayName string    `firestore:"displayName" json:"displayName"`
	Disabled    bool      `firestore:"disabled" json:"disabled"`
	FCMTokens   []string  `firestore:"fcmTokens,omitempty" json:"fcmTokens,omitempty"`
	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
}
