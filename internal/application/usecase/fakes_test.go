package usecase_test

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/eventos-api/internal/domain/entity"
)

// Fakes en memoria compartidos por los tests del paquete.

type memStore struct {
	vendors map[string]*entity.Vendor
	items   map[string]*entity.Item
	cart    []*entity.CartItem
	guests  map[string]*entity.Guest
}

func newMemStore() *memStore {
	return &memStore{
		vendors: map[string]*entity.Vendor{},
		items:   map[string]*entity.Item{},
		guests:  map[string]*entity.Guest{},
	}
}

type fakeVendorRepo struct{ s *memStore }

func (r *fakeVendorRepo) Create(v *entity.Vendor) error             { r.s.vendors[v.ID] = v; return nil }
func (r *fakeVendorRepo) GetByID(id string) (*entity.Vendor, error) { return r.s.vendors[id], nil }
func (r *fakeVendorRepo) GetByUserID(userID string) (*entity.Vendor, error) {
	for _, v := range r.s.vendors {
		if v.UserID == userID {
			return v, nil
		}
	}
	return nil, nil
}
func (r *fakeVendorRepo) Update(v *entity.Vendor) error { r.s.vendors[v.ID] = v; return nil }
func (r *fakeVendorRepo) List(limit, offset int) ([]*entity.Vendor, error) {
	var out []*entity.Vendor
	for _, v := range r.s.vendors {
		out = append(out, v)
	}
	return out, nil
}
func (r *fakeVendorRepo) ListActive(limit, offset int) ([]*entity.Vendor, error) {
	var out []*entity.Vendor
	for _, v := range r.s.vendors {
		if v.MembershipStatus == entity.MembershipActive {
			out = append(out, v)
		}
	}
	return out, nil
}

type fakeItemRepo struct{ s *memStore }

func (r *fakeItemRepo) Create(i *entity.Item) error             { r.s.items[i.ID] = i; return nil }
func (r *fakeItemRepo) GetByID(id string) (*entity.Item, error) { return r.s.items[id], nil }
func (r *fakeItemRepo) Update(i *entity.Item) error             { r.s.items[i.ID] = i; return nil }
func (r *fakeItemRepo) UpdateStatus(id, status string) error {
	if it, ok := r.s.items[id]; ok {
		it.Status = status
	}
	return nil
}
func (r *fakeItemRepo) Delete(id string) error { delete(r.s.items, id); return nil }
func (r *fakeItemRepo) ListByVendor(vendorID string, limit, offset int) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, i := range r.s.items {
		if i.VendorID == vendorID {
			out = append(out, i)
		}
	}
	return out, nil
}
func (r *fakeItemRepo) List(limit, offset int) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, i := range r.s.items {
		out = append(out, i)
	}
	return out, nil
}
func (r *fakeItemRepo) ListOrderable(vendorID, category string, limit, offset int) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, i := range r.s.items {
		if i.Status != entity.ItemStatusApproved {
			continue
		}
		v := r.s.vendors[i.VendorID]
		if v == nil || v.MembershipStatus != entity.MembershipActive {
			continue
		}
		if vendorID != "" && i.VendorID != vendorID {
			continue
		}
		if category != "" && i.Category != category {
			continue
		}
		out = append(out, i)
	}
	return out, nil
}

type fakeCartRepo struct{ s *memStore }

func (r *fakeCartRepo) Create(c *entity.CartItem) error { r.s.cart = append(r.s.cart, c); return nil }
func (r *fakeCartRepo) GetByID(id string) (*entity.CartItem, error) {
	for _, c := range r.s.cart {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}
func (r *fakeCartRepo) GetByUserAndItem(userID, itemID string) (*entity.CartItem, error) {
	for _, c := range r.s.cart {
		if c.UserID == userID && c.ItemID == itemID {
			return c, nil
		}
	}
	return nil, nil
}
func (r *fakeCartRepo) UpdateQuantity(id string, quantity int) error {
	for _, c := range r.s.cart {
		if c.ID == id {
			c.Quantity = quantity
		}
	}
	return nil
}
func (r *fakeCartRepo) ListByUser(userID string) ([]*entity.CartItem, error) {
	var out []*entity.CartItem
	for _, c := range r.s.cart {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}
func (r *fakeCartRepo) Delete(id string) error {
	kept := r.s.cart[:0]
	for _, c := range r.s.cart {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	r.s.cart = kept
	return nil
}
func (r *fakeCartRepo) DeleteByUser(userID string) error {
	kept := r.s.cart[:0]
	for _, c := range r.s.cart {
		if c.UserID != userID {
			kept = append(kept, c)
		}
	}
	r.s.cart = kept
	return nil
}

type fakeGuestRepo struct{ s *memStore }

func (r *fakeGuestRepo) Create(g *entity.Guest) error             { r.s.guests[g.ID] = g; return nil }
func (r *fakeGuestRepo) GetByID(id string) (*entity.Guest, error) { return r.s.guests[id], nil }
func (r *fakeGuestRepo) Update(g *entity.Guest) error             { r.s.guests[g.ID] = g; return nil }
func (r *fakeGuestRepo) Delete(id string) error                   { delete(r.s.guests, id); return nil }
func (r *fakeGuestRepo) ListByUser(userID string) ([]*entity.Guest, error) {
	var out []*entity.Guest
	for _, g := range r.s.guests {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

// seedVendorWithItem agrega un vendor y un artículo suyo al store.
func seedVendorWithItem(s *memStore, vendorID, userID, membership, itemID, itemStatus string) {
	s.vendors[vendorID] = &entity.Vendor{
		ID: vendorID, UserID: userID, CompanyName: "Vendor " + vendorID,
		Category: "Catering", MembershipStatus: membership,
	}
	s.items[itemID] = &entity.Item{
		ID: itemID, VendorID: vendorID, Name: "Artículo " + itemID,
		Category: "Catering", Price: decimal.NewFromInt(100),
		Status: itemStatus,
	}
}
