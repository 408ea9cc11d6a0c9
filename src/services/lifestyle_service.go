// src/services/lifestyle_service.go
package services

import (
	"fmt"
	"strings"

	"github.com/username/dividendgoal/src/models"
)

var defaultLifestyleItems = []models.LifestyleItem{
	{Slug: "netflix-premium", Name: "Netflix Premium", Cost: 22.99, Category: "Subscription", Popular: true},
	{Slug: "youtube-premium", Name: "YouTube Premium", Cost: 13.99, Category: "Subscription"},
	{Slug: "spotify-family", Name: "Spotify Family", Cost: 16.99, Category: "Subscription", Popular: true},
	{Slug: "chatgpt-plus", Name: "ChatGPT Plus", Cost: 20.00, Category: "AI Tool"},
	{Slug: "adobe-creative-cloud", Name: "Adobe Creative Cloud", Cost: 54.99, Category: "Subscription"},
	{Slug: "disney-plus-bundle", Name: "Disney+ Bundle", Cost: 14.99, Category: "Subscription"},
	{Slug: "amazon-prime", Name: "Amazon Prime", Cost: 14.99, Category: "Subscription", Popular: true},

	{Slug: "iphone-16-pro-installment", Name: "iPhone 16 Pro (Installment)", Cost: 41.62, Category: "Gadget", Popular: true},
	{Slug: "macbook-pro-14", Name: "MacBook Pro 14 (Monthly)", Cost: 166.00, Category: "Gadget"},
	{Slug: "samsung-s24-ultra", Name: "Samsung S24 Ultra (Monthly)", Cost: 45.00, Category: "Gadget"},
	{Slug: "verizon-unlimited", Name: "Verizon 5G Unlimited", Cost: 80.00, Category: "Bill"},
	{Slug: "starlink-internet", Name: "Starlink Internet", Cost: 120.00, Category: "Bill"},
	{Slug: "att-fiber-internet", Name: "AT&T Fiber Internet", Cost: 55.00, Category: "Bill"},

	{Slug: "tesla-model-3-lease", Name: "Tesla Model 3 Lease", Cost: 329.00, Category: "Car", Popular: true},
	{Slug: "tesla-model-y-lease", Name: "Tesla Model Y Lease", Cost: 399.00, Category: "Car"},
	{Slug: "ford-f150-finance", Name: "Ford F-150 Finance", Cost: 750.00, Category: "Car"},
	{Slug: "toyota-camry-lease", Name: "Toyota Camry Lease", Cost: 350.00, Category: "Car"},
	{Slug: "honda-crv-lease", Name: "Honda CR-V Lease", Cost: 340.00, Category: "Car"},
	{Slug: "car-insurance-avg", Name: "Average Car Insurance", Cost: 150.00, Category: "Car"},

	{Slug: "starbucks-daily", Name: "Daily Starbucks", Cost: 150.00, Category: "Lifestyle", Popular: true},
	{Slug: "gym-membership-luxury", Name: "Luxury Gym Membership", Cost: 120.00, Category: "Health", Popular: true},
	{Slug: "crossfit-membership", Name: "CrossFit Membership", Cost: 160.00, Category: "Health"},
	{Slug: "weekly-groceries-single", Name: "Weekly Groceries (Single)", Cost: 300.00, Category: "Lifestyle"},
	{Slug: "weekly-groceries-family", Name: "Weekly Groceries (Family)", Cost: 800.00, Category: "Lifestyle"},
	{Slug: "weekend-dining-out", Name: "Weekend Dining Out", Cost: 200.00, Category: "Lifestyle"},
	{Slug: "pet-food-monthly", Name: "Monthly Pet Food", Cost: 80.00, Category: "Lifestyle"},

	{Slug: "avg-rent-nyc", Name: "Average Rent in NYC", Cost: 3500.00, Category: "Housing", Popular: true},
	{Slug: "avg-rent-texas", Name: "Average Rent in Texas", Cost: 1200.00, Category: "Housing", Popular: true},
	{Slug: "avg-rent-florida", Name: "Average Rent in Florida", Cost: 1500.00, Category: "Housing", Popular: true},
	{Slug: "hoa-fees", Name: "HOA Fees", Cost: 300.00, Category: "Housing"},
}

type lifestyleServiceImpl struct {
	items  []models.LifestyleItem
	bySlug map[string]models.LifestyleItem
}

// NewLifestyleService serves the built-in list of everyday expenses.
func NewLifestyleService() LifestyleService {
	return NewLifestyleServiceWithItems(defaultLifestyleItems)
}

// NewLifestyleServiceWithItems serves items in the given order. Later duplicates of a slug are ignored.
func NewLifestyleServiceWithItems(items []models.LifestyleItem) LifestyleService {
	s := &lifestyleServiceImpl{bySlug: make(map[string]models.LifestyleItem, len(items))}
	for _, item := range items {
		key := strings.ToLower(item.Slug)
		if _, dup := s.bySlug[key]; dup {
			continue
		}
		s.bySlug[key] = item
		s.items = append(s.items, item)
	}
	return s
}

func (s *lifestyleServiceImpl) GetAllItems() []models.LifestyleItem {
	out := make([]models.LifestyleItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *lifestyleServiceImpl) GetPopularItems() []models.LifestyleItem {
	out := []models.LifestyleItem{}
	for _, item := range s.items {
		if item.Popular {
			out = append(out, item)
		}
	}
	return out
}

func (s *lifestyleServiceImpl) FindBySlug(slug string) (models.LifestyleItem, error) {
	item, ok := s.bySlug[strings.ToLower(strings.TrimSpace(slug))]
	if !ok {
		return models.LifestyleItem{}, fmt.Errorf("%w: %s", ErrLifestyleItemNotFound, slug)
	}
	return item, nil
}

type lifestyleThreshold struct {
	minIncome float64
	covers    string
}

// Ordered from the largest expense down.
var lifestyleThresholds = []lifestyleThreshold{
	{1200, "a meaningful share of monthly rent in many U.S. cities"},
	{800, "a broad grocery run each week"},
	{500, "typical gas expenses for a commuter or two"},
	{200, "a family phone plan and streaming bundle"},
	{150, "Netflix Premium and multiple music subscriptions"},
	{100, "weekday Starbucks coffee or tea runs"},
	{50, "a few rideshares or transit passes"},
}

// DescribeLifestyle turns a monthly income into a plain-language list of the
// everyday expenses it could cover.
func DescribeLifestyle(monthlyIncome float64) string {
	var covered []string
	for _, th := range lifestyleThresholds {
		if monthlyIncome >= th.minIncome {
			covered = append(covered, th.covers)
		}
	}
	if len(covered) == 0 {
		return "This amount could chip away at small recurring bills like a streaming plan or a couple of coffees each week."
	}

	list := covered[0]
	if n := len(covered); n > 1 {
		list = strings.Join(covered[:n-1], ", ") + " and " + covered[n-1]
	}
	return fmt.Sprintf("At roughly $%.0f per month, this could cover %s. Illustration only, real budgets vary.", monthlyIncome, list)
}
