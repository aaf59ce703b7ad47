package models

import "encoding/json"

// User is the profile the NoteCompass API returns on login/register.
// Mobile is only populated for accounts created through registration.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Mobile string `json:"mobile,omitempty"`
}

// userWire mirrors the API payload, which identifies users either by
// "id" or by a Mongo-style "_id" depending on the endpoint.
type userWire struct {
	ID      string `json:"id"`
	MongoID string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Mobile  string `json:"mobile"`
}

func (u *User) UnmarshalJSON(data []byte) error {
	var w userWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	id := w.ID
	if id == "" {
		id = w.MongoID
	}
	*u = User{ID: id, Name: w.Name, Email: w.Email, Mobile: w.Mobile}
	return nil
}
