package models

// Chat represents a chat record tied to the user who initiated it. At most
// one chat exists per initiator.
type Chat struct {
	ID          int64 `db:"id" json:"id"`
	InitiatorID int64 `db:"initiator_id" json:"initiator"`
}
