package storage

import "restaurant-pos/internal/domain"

// Seed data for the in-memory store: the demo floor plan, menu and
// coupon book.

func SeedTables() []domain.Table {
	return []domain.Table{
		{ID: 1, Number: 1, Seats: 2, Status: domain.TableAvailable},
		{ID: 2, Number: 2, Seats: 4, Status: domain.TableAvailable},
		{ID: 3, Number: 3, Seats: 2, Status: domain.TableAvailable},
		{ID: 4, Number: 4, Seats: 4, Status: domain.TableAvailable},
		{ID: 5, Number: 5, Seats: 6, Status: domain.TableAvailable},
		{ID: 6, Number: 6, Seats: 2, Status: domain.TableAvailable},
		{ID: 7, Number: 7, Seats: 2, Status: domain.TableAvailable},
		{ID: 8, Number: 8, Seats: 4, Status: domain.TableAvailable},
		{ID: 9, Number: 9, Seats: 8, Status: domain.TableAvailable},
		{ID: 10, Number: 10, Seats: 4, Status: domain.TableAvailable},
		{ID: 11, Number: 11, Seats: 2, Status: domain.TableAvailable},
		{ID: 12, Number: 12, Seats: 6, Status: domain.TableAvailable},
		{ID: 13, Number: 13, Seats: 4, Status: domain.TableAvailable},
		{ID: 14, Number: 14, Seats: 2, Status: domain.TableAvailable},
		{ID: 15, Number: 15, Seats: 4, Status: domain.TableAvailable},
		{ID: 16, Number: 16, Seats: 8, Status: domain.TableAvailable},
	}
}

func SeedMenuItems() []domain.MenuItem {
	pizzaVariations := []domain.Variation{
		{ID: "var-small", Name: "Small (10\")", PriceAdjustment: -2.00},
		{ID: "var-medium", Name: "Medium (12\")", PriceAdjustment: 0},
		{ID: "var-large", Name: "Large (14\")", PriceAdjustment: 3.00},
	}
	pizzaAddons := []domain.Addon{
		{ID: "add-cheese", Name: "Extra Cheese", Price: 1.50, Category: "Toppings"},
		{ID: "add-mushrooms", Name: "Mushrooms", Price: 1.00, Category: "Toppings"},
		{ID: "add-olives", Name: "Olives", Price: 0.75, Category: "Toppings"},
	}

	return []domain.MenuItem{
		{ID: "item1", Name: "Margherita Pizza", Price: 12.99, Description: "Classic cheese pizza with tomato sauce", Image: "/placeholder.svg", Category: "Pizza", Variations: pizzaVariations, Addons: pizzaAddons},
		{ID: "item2", Name: "Garlic Bread", Price: 4.99, Description: "Toasted bread with garlic butter", Image: "/placeholder.svg", Category: "Sides"},
		{ID: "item3", Name: "Cola", Price: 2.49, Description: "Refreshing cola drink", Image: "/placeholder.svg", Category: "Beverages"},
		{ID: "item4", Name: "Chicken Caesar Salad", Price: 9.99, Description: "Fresh salad with grilled chicken", Image: "/placeholder.svg", Category: "Salads", Addons: []domain.Addon{
			{ID: "add-chicken", Name: "Extra Chicken", Price: 2.50, Category: "Protein"},
			{ID: "add-croutons", Name: "Extra Croutons", Price: 0.50, Category: "Extras"},
		}},
		{ID: "item5", Name: "French Fries", Price: 3.99, Description: "Crispy golden french fries", Image: "/placeholder.svg", Category: "Sides"},
		{ID: "item6", Name: "Cheeseburger", Price: 10.99, Description: "Beef patty with cheese", Image: "/placeholder.svg", Category: "Burgers", Addons: []domain.Addon{
			{ID: "add-bacon", Name: "Bacon", Price: 1.50, Category: "Extras"},
			{ID: "add-patty", Name: "Extra Patty", Price: 2.50, Category: "Protein"},
			{ID: "add-avocado", Name: "Avocado", Price: 1.25, Category: "Extras"},
		}},
		{ID: "item7", Name: "Iced Tea", Price: 2.99, Description: "Sweet iced tea", Image: "/placeholder.svg", Category: "Beverages"},
		{ID: "item8", Name: "Pepperoni Pizza", Price: 14.99, Description: "Pizza with pepperoni and cheese", Image: "/placeholder.svg", Category: "Pizza", Variations: pizzaVariations, Addons: pizzaAddons},
		{ID: "item9", Name: "Buffalo Wings", Price: 8.99, Description: "Spicy chicken wings", Image: "/placeholder.svg", Category: "Appetizers", Variations: []domain.Variation{
			{ID: "var-mild", Name: "Mild", PriceAdjustment: 0},
			{ID: "var-hot", Name: "Hot", PriceAdjustment: 0},
			{ID: "var-atomic", Name: "Atomic", PriceAdjustment: 0.50},
		}},
		{ID: "item10", Name: "Water", Price: 1.49, Description: "Bottled water", Image: "/placeholder.svg", Category: "Beverages"},
		{ID: "item11", Name: "Mushroom Risotto", Price: 15.99, Description: "Creamy rice with mushrooms", Image: "/placeholder.svg", Category: "Mains"},
		{ID: "item12", Name: "Bruschetta", Price: 6.99, Description: "Toasted bread with tomatoes and basil", Image: "/placeholder.svg", Category: "Appetizers"},
		{ID: "item13", Name: "Tiramisu", Price: 7.99, Description: "Italian coffee dessert", Image: "/placeholder.svg", Category: "Desserts"},
		{ID: "item14", Name: "Wine", Price: 8.99, Description: "Glass of house wine", Image: "/placeholder.svg", Category: "Beverages"},
		{ID: "item15", Name: "Spaghetti Carbonara", Price: 13.99, Description: "Pasta with egg, cheese, and bacon", Image: "/placeholder.svg", Category: "Pasta"},
	}
}

func SeedCoupons() []domain.Coupon {
	return []domain.Coupon{
		{ID: "COUPON-001", Code: "WELCOME15", Description: "15% off on your first order", DiscountType: domain.DiscountPercentage, DiscountValue: 15, MinimumOrderAmount: 0, ExpiryDate: "2027-12-31", IsActive: true},
		{ID: "COUPON-002", Code: "SUMMER10", Description: "10% off on your order", DiscountType: domain.DiscountPercentage, DiscountValue: 10, MinimumOrderAmount: 30, ExpiryDate: "2027-08-31", IsActive: true},
		{ID: "COUPON-003", Code: "FLAT5", Description: "$5 off on orders above $50", DiscountType: domain.DiscountFixed, DiscountValue: 5, MinimumOrderAmount: 50, ExpiryDate: "2027-07-15", IsActive: true},
		{ID: "COUPON-004", Code: "SPECIAL20", Description: "20% off on weekends", DiscountType: domain.DiscountPercentage, DiscountValue: 20, MinimumOrderAmount: 40, ExpiryDate: "2027-09-30", IsActive: true},
	}
}
