package hotel

import "strconv"

// Entity is implemented by every model served through a Collection so the
// front ends can render any list generically.
type Entity interface {
	Key() ID
	Columns() []string
	Row() []string
}

// Room represents a bookable hotel room
type Room struct {
	ID          ID     `json:"id" yaml:"id"`
	RoomNumber  string `json:"room_number" yaml:"room_number"`
	RoomType    string `json:"room_type" yaml:"room_type"`
	Price       Amount `json:"price" yaml:"price"`
	Capacity    int    `json:"capacity" yaml:"capacity"`
	Status      string `json:"status" yaml:"status"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty" yaml:"image_url,omitempty"`
}

func (r Room) Key() ID { return r.ID }

func (Room) Columns() []string {
	return []string{"ID", "NUMBER", "TYPE", "PRICE", "CAPACITY", "STATUS"}
}

func (r Room) Row() []string {
	return []string{r.ID.String(), r.RoomNumber, r.RoomType, r.Price.String(), strconv.Itoa(r.Capacity), r.Status}
}

// Booking represents a room reservation
type Booking struct {
	ID          ID     `json:"id" yaml:"id"`
	RoomID      ID     `json:"room_id" yaml:"room_id"`
	GuestName   string `json:"guest_name" yaml:"guest_name"`
	Email       string `json:"email" yaml:"email"`
	PhoneNumber string `json:"phone_number,omitempty" yaml:"phone_number,omitempty"`
	CheckIn     string `json:"check_in" yaml:"check_in"`
	CheckOut    string `json:"check_out" yaml:"check_out"`
	Guests      int    `json:"guests" yaml:"guests"`
	Status      string `json:"status" yaml:"status"`
}

func (b Booking) Key() ID { return b.ID }

func (Booking) Columns() []string {
	return []string{"ID", "GUEST", "ROOM", "CHECK IN", "CHECK OUT", "STATUS"}
}

func (b Booking) Row() []string {
	return []string{b.ID.String(), b.GuestName, b.RoomID.String(), b.CheckIn, b.CheckOut, b.Status}
}

// Category groups shop products (souvenir, café, book shop)
type Category struct {
	ID          ID     `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

func (c Category) Key() ID { return c.ID }

func (Category) Columns() []string {
	return []string{"ID", "NAME", "TYPE"}
}

func (c Category) Row() []string {
	return []string{c.ID.String(), c.Name, c.Type}
}

// Product is an item sold in one of the shops
type Product struct {
	ID          ID     `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Price       Amount `json:"price" yaml:"price"`
	Stock       int    `json:"stock" yaml:"stock"`
	CategoryID  ID     `json:"category_id" yaml:"category_id"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty" yaml:"image_url,omitempty"`
}

func (p Product) Key() ID { return p.ID }

func (Product) Columns() []string {
	return []string{"ID", "NAME", "PRICE", "STOCK", "CATEGORY"}
}

func (p Product) Row() []string {
	return []string{p.ID.String(), p.Name, p.Price.String(), strconv.Itoa(p.Stock), p.CategoryID.String()}
}

// News is a published article
type News struct {
	ID        ID     `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Content   string `json:"content" yaml:"content"`
	ImageURL  string `json:"image_url,omitempty" yaml:"image_url,omitempty"`
	CreatedAt string `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

func (n News) Key() ID { return n.ID }

func (News) Columns() []string {
	return []string{"ID", "TITLE", "CREATED AT"}
}

func (n News) Row() []string {
	return []string{n.ID.String(), n.Title, n.CreatedAt}
}

// GalleryItem is an image shown in the public gallery
type GalleryItem struct {
	ID       ID     `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	ImageURL string `json:"image_url" yaml:"image_url"`
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
}

func (g GalleryItem) Key() ID { return g.ID }

func (GalleryItem) Columns() []string {
	return []string{"ID", "TITLE", "CATEGORY", "IMAGE"}
}

func (g GalleryItem) Row() []string {
	return []string{g.ID.String(), g.Title, g.Category, g.ImageURL}
}

// VisionMission holds the hotel's vision and mission statements
type VisionMission struct {
	ID      ID     `json:"id" yaml:"id"`
	Vision  string `json:"vision" yaml:"vision"`
	Mission string `json:"mission" yaml:"mission"`
}

func (v VisionMission) Key() ID { return v.ID }

func (VisionMission) Columns() []string {
	return []string{"ID", "VISION", "MISSION"}
}

func (v VisionMission) Row() []string {
	return []string{v.ID.String(), v.Vision, v.Mission}
}
