package models

import (
	"fmt"
	"strconv"
)

// Type labels and codes of the barcode-capable models.
const (
	LabelPart     = "part"
	CodePart      = "PA"
	LabelCategory = "partcategory"
	CodeCategory  = "PC"
	LabelStock    = "stockitem"
	CodeStock     = "SI"
)

// PartCategory groups parts into a tree.
type PartCategory struct {
	ID          int    `gorm:"primaryKey;column:id" json:"pk"`
	Name        string `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Description string `gorm:"column:description;type:varchar(250)" json:"description"`
	ParentID    *int   `gorm:"column:parent_id;index" json:"parent"` // Nullable, root categories have no parent
	BarcodeData string `gorm:"column:barcode_data;type:text" json:"barcode_data,omitempty"`
	BarcodeHash string `gorm:"column:barcode_hash;type:varchar(128);index" json:"barcode_hash,omitempty"`
}

// TableName overrides the table name.
func (PartCategory) TableName() string {
	return "part_categories"
}

func (PartCategory) TypeLabel() string { return LabelCategory }
func (PartCategory) TypeCode() string  { return CodeCategory }
func (c PartCategory) PrimaryKey() int { return c.ID }

// FormatMatchedResponse renders the category for a scan response.
func (c PartCategory) FormatMatchedResponse() map[string]any {
	return map[string]any{
		"pk":      c.ID,
		"name":    c.Name,
		"api_url": "/categories/" + strconv.Itoa(c.ID) + "/parts",
	}
}

// Part is a type of item kept in stock.
type Part struct {
	ID           int    `gorm:"primaryKey;column:id" json:"pk"`
	Name         string `gorm:"column:name;type:varchar(100);not null;uniqueIndex:idx_parts_name_category" json:"name"`
	Description  string `gorm:"column:description;type:varchar(250)" json:"description"`
	IPN          string `gorm:"column:ipn;type:varchar(100)" json:"ipn,omitempty"` // Internal part number
	CategoryID   int    `gorm:"column:category_id;not null;uniqueIndex:idx_parts_name_category" json:"category"`
	MinimumStock int    `gorm:"column:minimum_stock;default:0" json:"minimum_stock"`
	Units        string `gorm:"column:units;type:varchar(20);default:pcs" json:"units"`
	Trackable    bool   `gorm:"column:trackable;default:false" json:"trackable"`
	BarcodeData  string `gorm:"column:barcode_data;type:text" json:"barcode_data,omitempty"`
	BarcodeHash  string `gorm:"column:barcode_hash;type:varchar(128);index" json:"barcode_hash,omitempty"`
}

// TableName overrides the table name.
func (Part) TableName() string {
	return "parts"
}

// String renders the part name, with the IPN when set.
func (p Part) String() string {
	if p.IPN == "" {
		return p.Name
	}
	return fmt.Sprintf("%s (%s)", p.Name, p.IPN)
}

func (Part) TypeLabel() string { return LabelPart }
func (Part) TypeCode() string  { return CodePart }
func (p Part) PrimaryKey() int { return p.ID }

// FormatMatchedResponse renders the part for a scan response.
func (p Part) FormatMatchedResponse() map[string]any {
	return map[string]any{
		"pk":      p.ID,
		"name":    p.String(),
		"api_url": "/parts/" + strconv.Itoa(p.ID),
	}
}

// StockItem is a physical quantity of a part at a location.
type StockItem struct {
	ID          int     `gorm:"primaryKey;column:id" json:"pk"`
	PartID      int     `gorm:"column:part_id;not null;index" json:"part"`
	Location    string  `gorm:"column:location;type:varchar(100)" json:"location,omitempty"`
	Quantity    float64 `gorm:"column:quantity;type:decimal(15,5);not null" json:"quantity"`
	BarcodeData string  `gorm:"column:barcode_data;type:text" json:"barcode_data,omitempty"`
	BarcodeHash string  `gorm:"column:barcode_hash;type:varchar(128);index" json:"barcode_hash,omitempty"`
}

// TableName overrides the table name.
func (StockItem) TableName() string {
	return "stock_items"
}

func (StockItem) TypeLabel() string { return LabelStock }
func (StockItem) TypeCode() string  { return CodeStock }
func (s StockItem) PrimaryKey() int { return s.ID }

// FormatMatchedResponse renders the stock item for a scan response.
func (s StockItem) FormatMatchedResponse() map[string]any {
	return map[string]any{
		"pk":       s.ID,
		"part":     s.PartID,
		"quantity": s.Quantity,
	}
}

// Project groups parts used together.
type Project struct {
	ID          int    `gorm:"primaryKey;column:id" json:"pk"`
	Name        string `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Description string `gorm:"column:description;type:varchar(250)" json:"description"`
}

// TableName overrides the table name.
func (Project) TableName() string {
	return "projects"
}

// ProjectPart links a part to a project.
type ProjectPart struct {
	ID        int `gorm:"primaryKey;column:id" json:"pk"`
	ProjectID int `gorm:"column:project_id;not null;index" json:"project"`
	PartID    int `gorm:"column:part_id;not null;index" json:"part"`
	Quantity  int `gorm:"column:quantity;default:1" json:"quantity"`
}

// TableName overrides the table name.
func (ProjectPart) TableName() string {
	return "project_parts"
}
