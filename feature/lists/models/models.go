package models

import "time"

// List represents a user list (e.g. a shopping list) with its items.
type List struct {
	ID          string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Name        string    `gorm:"column:name;size:255" json:"name"`
	OrderNumber int       `gorm:"column:order_number" json:"order_number"`
	IsArchived  bool      `gorm:"column:is_archived" json:"is_archived"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	ModifiedAt  time.Time `gorm:"column:modified_at" json:"modified_at"`
	Items       []Item    `gorm:"foreignKey:ListID" json:"items"`
}

// TableName overrides the table name.
func (List) TableName() string {
	return "lists"
}

// Item represents a single entry in a list.
type Item struct {
	ID           string      `gorm:"column:id;primaryKey;size:36" json:"id"`
	ListID       string      `gorm:"column:list_id;size:36;index" json:"list_id"`
	Title        string      `gorm:"column:title;size:255" json:"title"`
	Description  *string     `gorm:"column:description" json:"description,omitempty"`
	Quantity     int         `gorm:"column:quantity" json:"quantity"`
	OrderNumber  int         `gorm:"column:order_number" json:"order_number"`
	IsCrossedOut bool        `gorm:"column:is_crossed_out" json:"is_crossed_out"`
	CreatedAt    time.Time   `gorm:"column:created_at" json:"created_at"`
	ModifiedAt   time.Time   `gorm:"column:modified_at" json:"modified_at"`
	Images       []ItemImage `gorm:"foreignKey:ItemID" json:"images"`
}

// TableName overrides the table name.
func (Item) TableName() string {
	return "items"
}

// ItemImage represents image metadata attached to an item.
// The binary payload is not stored in the database; it lives in object
// storage under ObjectKey() and is carried in Data only in transit.
type ItemImage struct {
	ID          string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	ItemID      string    `gorm:"column:item_id;size:36;index" json:"item_id"`
	OrderNumber int       `gorm:"column:order_number" json:"order_number"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`

	// Data holds the decoded payload during import/export. Never persisted.
	Data []byte `gorm:"-" json:"-"`
}

// TableName overrides the table name.
func (ItemImage) TableName() string {
	return "item_images"
}

// ImageObjectPrefix is the object storage prefix for image payloads.
const ImageObjectPrefix = "images/"

// ObjectKey returns the object storage key for this image's payload.
func (i ItemImage) ObjectKey() string {
	return ImageObjectPrefix + i.ID + ".bin"
}
