package models

// ClerkEvent is the envelope of an identity-provider webhook.
type ClerkEvent struct {
	Type string        `json:"type"`
	Data ClerkUserData `json:"data"`
}

type ClerkUserData struct {
	ID             string              `json:"id"`
	EmailAddresses []ClerkEmailAddress `json:"email_addresses"`
	FirstName      *string             `json:"first_name"`
	LastName       *string             `json:"last_name"`
	ImageURL       *string             `json:"image_url"`
}

type ClerkEmailAddress struct {
	EmailAddress string `json:"email_address"`
}
