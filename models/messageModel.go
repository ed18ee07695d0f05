package models

import "gorm.io/gorm"

// Message is a contact-form submission handled from the admin back office.
type Message struct {
	gorm.Model
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Subject   string `json:"subject"`
	Body      string `json:"body" binding:"required"`
	TicketRef string `json:"ticketRef" gorm:"uniqueIndex;size:64"`
	IsRead    bool   `json:"isRead"`
}
