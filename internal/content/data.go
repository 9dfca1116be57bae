package content

import "strconv"

const siteName = "Anurag's Restaurant"

const unsplash = "https://images.unsplash.com/photo-"

func photo(id string, width int) string {
	return unsplash + id + "?auto=format&fit=crop&w=" + strconv.Itoa(width) + "&q=80"
}

var hero = Hero{
	Title:        siteName,
	Tagline:      "Experience the Taste of Excellence",
	Image:        photo("1517248135467-4c7edcad34c4", 800),
	CallToAction: "Reserve a Table",
}

var navigation = []NavigationEntry{
	{Label: "Home", SectionID: "hero"},
	{Label: "About", SectionID: "about"},
	{Label: "Menu", SectionID: "menu"},
	{Label: "Gallery", SectionID: "gallery"},
	{Label: "Testimonials", SectionID: "testimonials"},
	{Label: "Contact", SectionID: "contact"},
}

var categories = map[CategoryKey]Category{
	Starters: {
		Key:   Starters,
		Label: categoryLabels[Starters],
		Blurb: "Click to view our starters",
		Image: photo("1601050690597-df0568f70950", 800),
	},
	MainCourse: {
		Key:   MainCourse,
		Label: categoryLabels[MainCourse],
		Blurb: "Click to view our main course",
		Image: photo("1512058564366-18510be2db19", 800),
	},
	Sweets: {
		Key:   Sweets,
		Label: categoryLabels[Sweets],
		Blurb: "Click to view our sweets",
		Image: photo("1551024506-0bccd828d307", 800),
	},
}

var menu = map[CategoryKey][]MenuItem{
	Starters: {
		{Name: "Paneer Tikka", Price: "₹280", Description: "Cottage cheese marinated in spices and grilled to perfection"},
		{Name: "Veg Spring Roll", Price: "₹220", Description: "Crispy rolls filled with mixed vegetables and Chinese spices"},
		{Name: "Hara Bhara Kebab", Price: "₹260", Description: "Spinach and green pea patties with Indian spices"},
		{Name: "Veg Manchurian", Price: "₹240", Description: "Vegetable dumplings in spicy Chinese sauce"},
		{Name: "Aloo Tikki", Price: "₹180", Description: "Spiced potato patties served with mint chutney"},
	},
	MainCourse: {
		{Name: "Paneer Butter Masala", Price: "₹320", Description: "Cottage cheese in rich tomato and butter gravy"},
		{Name: "Veg Biryani", Price: "₹280", Description: "Fragrant basmati rice cooked with mixed vegetables and spices"},
		{Name: "Veg Noodles", Price: "₹240", Description: "Stir-fried noodles with fresh vegetables"},
		{Name: "Malai Kofta", Price: "₹300", Description: "Vegetable dumplings in creamy tomato gravy"},
		{Name: "Veg Fried Rice", Price: "₹220", Description: "Chinese-style fried rice with mixed vegetables"},
	},
	Sweets: {
		{Name: "Gulab Jamun", Price: "₹180", Description: "Sweet milk dumplings soaked in sugar syrup"},
		{Name: "Rasmalai", Price: "₹220", Description: "Cottage cheese dumplings in sweetened milk"},
		{Name: "Ice Cream", Price: "₹150", Description: "Vanilla, chocolate, or strawberry ice cream"},
		{Name: "Kheer", Price: "₹160", Description: "Traditional rice pudding with nuts and cardamom"},
		{Name: "Jalebi", Price: "₹140", Description: "Crispy sweet pretzels soaked in sugar syrup"},
	},
}

var gallery = []GalleryImage{
	{Src: photo("1517248135467-4c7edcad34c4", 800), Alt: "Restaurant Interior"},
	{Src: photo("1414235077428-338989a2e8c0", 800), Alt: "Fine Dining"},
	{Src: photo("1555396273-367ea4eb4db5", 800), Alt: "Chef Cooking"},
	{Src: photo("1552566626-52f8b828add9", 800), Alt: "Food Presentation"},
	{Src: photo("1514933651103-005eec06c04b", 800), Alt: "Bar Area"},
	{Src: photo("1559339352-11d035aa65de", 800), Alt: "Outdoor Seating"},
	{Src: photo("1544148103-0773bf10d330", 800), Alt: "Wine Selection"},
	{Src: photo("1414235077428-338989a2e8c0", 800), Alt: "Special Events"},
	{Src: photo("1550966871-3ed3cdb5ed0c", 800), Alt: "Private Dining Room"},
}

var testimonials = []Testimonial{
	{
		Name:   "Priya Sharma",
		Avatar: photo("1494790108377-be9c29b29330", 100),
		Rating: 5,
		Quote:  "The vegetarian menu at Anurag Restaurant is exceptional! The Paneer Butter Masala is the best I've ever had. The ambiance is perfect for family dinners, and the service is impeccable.",
	},
	{
		Name:   "Rahul Patel",
		Avatar: photo("1507003211169-0a1dd7228f2d", 100),
		Rating: 5,
		Quote:  "I love the variety of dishes here! The Veg Biryani is aromatic and perfectly spiced. The staff is very attentive, and the restaurant maintains excellent hygiene standards.",
	},
	{
		Name:   "Ananya Gupta",
		Avatar: photo("1438761681033-6461ffad8d80", 100),
		Rating: 5,
		Quote:  "The desserts are heavenly! The Gulab Jamun is melt-in-your-mouth delicious. I appreciate how they maintain authentic flavors while keeping everything vegetarian.",
	},
	{
		Name:   "Vikram Singh",
		Avatar: photo("1472099645785-5658abf4ff4e", 100),
		Rating: 5,
		Quote:  "Great place for business lunches! The Veg Manchurian and Noodles are my go-to dishes. The restaurant has a professional atmosphere and excellent service.",
	},
	{
		Name:   "Meera Kapoor",
		Avatar: photo("1544005313-94ddf0286df2", 100),
		Rating: 5,
		Quote:  "The Hara Bhara Kebab is a must-try! The restaurant's commitment to quality ingredients is evident in every dish. Perfect for both casual and special occasions.",
	},
	{
		Name:   "Arjun Mehta",
		Avatar: photo("1500648767791-00dcc994a43e", 100),
		Rating: 5,
		Quote:  "The Malai Kofta is absolutely divine! The restaurant's attention to detail in both food and service makes it one of my favorite dining spots in the city.",
	},
}

var contact = Contact{
	Address: "Gomti Nagar, Lucknow",
	Phone:   "+91 6394524348",
	Email:   "anurag@gmail.com",
	Hours:   "Monday - Sunday: 11:00 AM - 11:00 PM",
	Social: []SocialLink{
		{Network: "Instagram", Handle: "@anuragrestaurant"},
		{Network: "Facebook", Handle: "Anurag Restaurant"},
	},
}
