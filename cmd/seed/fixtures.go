package main

import "campus-market.backend/internal/domain/entities"

const demoPassword = "password123"

type demoUser struct {
	email      string
	firstName  string
	lastName   string
	university string
	role       entities.UserRole
}

type demoListing struct {
	owner       string
	title       string
	description string
	price       string
	category    entities.ProductCategory
	condition   entities.ProductCondition
	location    string
	// sale, when set, marks the listing sold and records its purchase history.
	sale []demoSale
}

type demoSale struct {
	buyer  string
	status entities.TransactionStatus
}

var demoUsers = []demoUser{
	{"admin@university.edu", "Admin", "User", "university", entities.UserRoleAdmin},
	{"sarah@stanford.edu", "Sarah", "Chen", "stanford", entities.UserRoleStudent},
	{"mike@mit.edu", "Mike", "Johnson", "mit", entities.UserRoleStudent},
	{"emma@berkeley.edu", "Emma", "Wilson", "berkeley", entities.UserRoleStudent},
}

const (
	sarah = "sarah@stanford.edu"
	mike  = "mike@mit.edu"
	emma  = "emma@berkeley.edu"
)

var demoListings = []demoListing{
	{owner: sarah, title: "Introduction to Algorithms (4th Edition)", description: "Comprehensive guide to algorithms. Great condition, barely used. Includes practice problems and solutions.", price: "45.00", category: entities.CategoryTextbooks, condition: entities.ConditionLikeNew, location: "Stanford Campus"},
	{owner: mike, title: "Biology Textbook", description: "Standard textbook for BIO 101. Some highlighting but all pages intact.", price: "35.00", category: entities.CategoryTextbooks, condition: entities.ConditionGood, location: "MIT Campus"},
	{owner: emma, title: "Engineering Fundamentals", description: "Great for intro engineering courses. Clean copy with no writing.", price: "50.00", category: entities.CategoryTextbooks, condition: entities.ConditionLikeNew, location: "Berkeley"},
	{owner: sarah, title: "Gaming Laptop with RGB Keyboard", description: "High performance gaming laptop. Excellent condition, includes charger.", price: "750.00", category: entities.CategoryElectronics, condition: entities.ConditionLikeNew, location: "Stanford Campus"},
	{owner: mike, title: "Smartwatch - Latest Model", description: "Perfect for fitness tracking and notifications. Barely used.", price: "200.00", category: entities.CategoryElectronics, condition: entities.ConditionLikeNew, location: "MIT Campus"},
	{owner: emma, title: "Modern Desk Lamp", description: "LED desk lamp with adjustable brightness. Great for studying.", price: "35.00", category: entities.CategoryElectronics, condition: entities.ConditionLikeNew, location: "Berkeley"},
	{owner: sarah, title: "University Hoodie (M)", description: "Grey university hoodie, size medium. Super comfortable.", price: "40.00", category: entities.CategoryClothing, condition: entities.ConditionGood, location: "Stanford Campus"},
	{owner: mike, title: "Vintage Denim Jacket", description: "Classic vintage denim jacket. Great for layering!", price: "60.00", category: entities.CategoryClothing, condition: entities.ConditionGood, location: "MIT Campus"},
	{owner: emma, title: "Vintage Sneakers", description: "Retro sneakers in great condition. Size 10.", price: "45.00", category: entities.CategoryClothing, condition: entities.ConditionGood, location: "Berkeley"},
	{owner: sarah, title: "Comfortable Bean Bag Chair", description: "Perfect for dorm room or study corner. Very comfortable.", price: "80.00", category: entities.CategoryFurniture, condition: entities.ConditionGood, location: "Stanford Campus"},
	{owner: mike, title: "Modern Minimal Backpack", description: "Stylish backpack with laptop compartment. Fits 15\" laptops.", price: "50.00", category: entities.CategoryFurniture, condition: entities.ConditionLikeNew, location: "MIT Campus"},
	{owner: sarah, title: "Basketball", description: "Official size basketball. Great condition for pickup games.", price: "25.00", category: entities.CategorySports, condition: entities.ConditionGood, location: "Stanford Campus"},
	{owner: mike, title: "Tennis Racket with Balls", description: "Quality tennis racket with 3 tennis balls. Perfect for beginners.", price: "45.00", category: entities.CategorySports, condition: entities.ConditionGood, location: "MIT Campus"},
	{owner: emma, title: "Yoga Mat + Water Bottle", description: "Premium yoga mat with matching water bottle. Lightly used.", price: "30.00", category: entities.CategorySports, condition: entities.ConditionLikeNew, location: "Berkeley"},
	{
		owner: sarah, title: "Calculus Textbook", description: "Calculus 3rd edition textbook. Great condition.", price: "55.00",
		category: entities.CategoryTextbooks, condition: entities.ConditionGood, location: "Stanford Campus",
		sale: []demoSale{{buyer: mike, status: entities.TransactionStatusCompleted}},
	},
	{
		owner: mike, title: "Wireless Headphones", description: "Premium wireless headphones with noise cancellation.", price: "120.00",
		category: entities.CategoryElectronics, condition: entities.ConditionLikeNew, location: "MIT Campus",
		sale: []demoSale{
			{buyer: emma, status: entities.TransactionStatusCompleted},
			{buyer: sarah, status: entities.TransactionStatusRefunded},
		},
	},
	{
		owner: emma, title: "Study Desk", description: "Compact study desk perfect for dorm rooms.", price: "85.00",
		category: entities.CategoryFurniture, condition: entities.ConditionGood, location: "Berkeley",
		sale: []demoSale{{buyer: sarah, status: entities.TransactionStatusCompleted}},
	},
}
