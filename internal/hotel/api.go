// Package hotel exposes the remote hotel API as typed endpoint families.
package hotel

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/hotelsuite/hotelsuite/internal/apiclient"
)

// API bundles every endpoint family used by the dashboards and the public
// site.
type API struct {
	Auth *Auth

	Rooms         *Resource[Room]
	Bookings      *Resource[Booking]
	Categories    *Resource[Category]
	Products      *Resource[Product]
	News          *Resource[News]
	Gallery       *Resource[GalleryItem]
	VisionMission *Resource[VisionMission]

	PublicRooms    *ReadOnly[Room]
	PublicNews     *ReadOnly[News]
	PublicGallery  *ReadOnly[GalleryItem]
	PublicBookings *PublicBookings

	collections map[string]Collection
	log         zerolog.Logger
}

// New wires every endpoint family onto client.
func New(client *apiclient.Client, log zerolog.Logger) *API {
	a := &API{
		Auth:          &Auth{client: client, log: log},
		Rooms:         NewResource[Room](client, log, "rooms", "/api/rooms"),
		Bookings:      NewResource[Booking](client, log, "bookings", "/api/bookings"),
		Categories:    NewResource[Category](client, log, "categories", "/api/categories"),
		Products:      NewResource[Product](client, log, "products", "/api/products"),
		News:          NewResource[News](client, log, "news", "/api/news"),
		Gallery:       NewResource[GalleryItem](client, log, "gallery", "/api/gallery"),
		VisionMission: NewResource[VisionMission](client, log, "vision-mission", "/api/vision-mission"),

		PublicRooms:    &ReadOnly[Room]{res: NewResource[Room](client, log, "public-rooms", "/public/rooms")},
		PublicNews:     &ReadOnly[News]{res: NewResource[News](client, log, "public-news", "/public/news")},
		PublicGallery:  &ReadOnly[GalleryItem]{res: NewResource[GalleryItem](client, log, "public-gallery", "/public/gallery")},
		PublicBookings: &PublicBookings{res: NewResource[Booking](client, log, "public-bookings", publicBookingsPath)},

		log: log,
	}

	a.collections = make(map[string]Collection)
	for _, c := range []Collection{a.Rooms, a.Bookings, a.Categories, a.Products, a.News, a.Gallery, a.VisionMission} {
		a.collections[c.Name()] = c
	}
	return a
}

// Collection looks up an admin endpoint family by name ("rooms", "news", ...).
func (a *API) Collection(name string) (Collection, bool) {
	c, ok := a.collections[name]
	return c, ok
}

// CollectionNames returns the admin endpoint family names in sorted order.
func (a *API) CollectionNames() []string {
	names := make([]string, 0, len(a.collections))
	for name := range a.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
