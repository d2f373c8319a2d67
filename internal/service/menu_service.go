package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"restaurant-pos/internal/domain"
)

var ErrMenuItemNotFound = errors.New("menu item not found")

type MenuService struct {
	menu MenuRepository
}

func NewMenuService(menu MenuRepository) *MenuService {
	return &MenuService{menu: menu}
}

func (s *MenuService) List() ([]domain.MenuItem, error) {
	return s.menu.ListItems()
}

func (s *MenuService) Get(id string) (domain.MenuItem, error) {
	return s.menu.GetItem(id)
}

func (s *MenuService) Create(item domain.MenuItem) (domain.MenuItem, error) {
	if err := validateMenuItem(item); err != nil {
		return domain.MenuItem{}, err
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	assignOptionIDs(&item)
	return s.menu.CreateItem(item)
}

func (s *MenuService) Update(item domain.MenuItem) (domain.MenuItem, error) {
	if err := validateMenuItem(item); err != nil {
		return domain.MenuItem{}, err
	}
	assignOptionIDs(&item)
	return s.menu.UpdateItem(item)
}

func (s *MenuService) Delete(id string) error {
	return s.menu.DeleteItem(id)
}

func validateMenuItem(item domain.MenuItem) error {
	if item.Name == "" {
		return errors.New("menu item name is required")
	}
	if item.Price < 0 {
		return errors.New("menu item price cannot be negative")
	}
	for _, a := range item.Addons {
		if a.Price < 0 {
			return fmt.Errorf("addon %q price cannot be negative", a.Name)
		}
	}
	return nil
}

// Variation adjustments may be negative; only ids need filling in for
// options created through the menu editor.
func assignOptionIDs(item *domain.MenuItem) {
	for i := range item.Variations {
		if item.Variations[i].ID == "" {
			item.Variations[i].ID = uuid.NewString()
		}
	}
	for i := range item.Addons {
		if item.Addons[i].ID == "" {
			item.Addons[i].ID = uuid.NewString()
		}
	}
}
