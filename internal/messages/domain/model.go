package domain

import "time"

// Message is a free-form contact submission. Write-once; no workflow.
//
// The JSON tags preserve the wire contract of the public site, including the
// legacy `Name`/`Soyad` field names.
type Message struct {
	ID        string    `firestore:"-" json:"id"`
	Name      string    `firestore:"name" json:"Name"`
	Surname   string    `firestore:"surname" json:"Soyad"`
	Email     string    `firestore:"email" json:"email"`
	Subject   string    `firestore:"subject" json:"subject"`
	Body      string    `firestore:"body" json:"message"`
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp" json:"createdAt"`
}
