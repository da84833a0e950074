package cms

// Wire types for the remote CMS. Field names follow the CMS's JSON
// attribute names, so these decode straight off the responses.

type Office struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Employee struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Office Office `json:"office"`
}

type DeviceType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type DeviceModel struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// File is an attachment stored by the CMS. URL is relative to the CMS
// base address; use Client.FileURL to resolve it.
type File struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// TextRun is one run of text inside a comment paragraph.
type TextRun struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// CommentNode is one paragraph of a record's free-text comment.
type CommentNode struct {
	Type     string    `json:"type"`
	Children []TextRun `json:"children"`
}

// EquipmentRecord is one inventory item with all associations expanded.
// PurchaseDate stays in the CMS's YYYY-MM-DD form; parsing happens in
// the inventory package where the derived fields live.
type EquipmentRecord struct {
	ID               int64         `json:"id"`
	Code             string        `json:"code"`
	SerialNumber     string        `json:"serial_number"`
	DeviceStatus     string        `json:"device_status"`
	PurchaseDate     string        `json:"purchase_date"`
	WarrantyDuration string        `json:"warranty_duration"`
	OSType           string        `json:"os_type"`
	Employee         *Employee     `json:"employee"`
	DeviceType       *DeviceType   `json:"device_type"`
	DeviceModel      *DeviceModel  `json:"device_model"`
	Files            []File        `json:"files"`
	Comment          []CommentNode `json:"comment"`
}

type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

type Meta struct {
	Pagination Pagination `json:"pagination"`
}

// EquipmentPage is one page of the equipment collection.
type EquipmentPage struct {
	Data []EquipmentRecord `json:"data"`
	Meta Meta              `json:"meta"`
}

// User is the identity returned by the auth endpoint.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthResponse is the body of a successful login.
type AuthResponse struct {
	JWT  string `json:"jwt"`
	User User   `json:"user"`
}
