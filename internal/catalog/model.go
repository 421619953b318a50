package catalog

// Transaction is a single wallet history entry.
type Transaction struct {
	ID          int     `bson:"id" json:"id"`
	Date        string  `bson:"date" json:"date"`
	Amount      float64 `bson:"amount" json:"amount"`
	Type        string  `bson:"type" json:"type"`
	Description string  `bson:"description" json:"description"`
}

// TransactionHistory is the single stored history document.
type TransactionHistory struct {
	Transactions []Transaction `bson:"transactions" json:"transactions"`
}

// Game is the catalog entry for a playable game.
type Game struct {
	ID          int      `bson:"id" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Genre       string   `bson:"genre" json:"genre"`
	ReleaseDate string   `bson:"release_date" json:"releaseDate"`
	Developer   string   `bson:"developer" json:"developer"`
	Rating      float64  `bson:"rating" json:"rating"`
	Platforms   []string `bson:"platforms" json:"platforms"`
	Description string   `bson:"description" json:"description"`
}

// Team is a tournament participant.
type Team struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Tournament is the static tournament payload.
type Tournament struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Game        string `json:"game"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Location    string `json:"location"`
	Teams       []Team `json:"teams"`
	PrizePool   int    `json:"prizePool"`
	Description string `json:"description"`
}

// SampleTransactionHistory returns seed data for development environments
// without a database.
func SampleTransactionHistory() TransactionHistory {
	return TransactionHistory{Transactions: []Transaction{
		{ID: 101, Date: "2024-12-01", Amount: 150.5, Type: "Credit", Description: "Salary Payment"},
		{ID: 102, Date: "2024-12-03", Amount: -50.0, Type: "Debit", Description: "Grocery Shopping"},
		{ID: 103, Date: "2024-12-05", Amount: 200.0, Type: "Credit", Description: "Freelance Project Payment"},
		{ID: 104, Date: "2024-12-06", Amount: -20.0, Type: "Debit", Description: "Coffee Shop"},
	}}
}

// SampleGame returns seed data for development environments without a
// database.
func SampleGame() Game {
	return Game{
		ID:          1,
		Name:        "Space Adventure",
		Genre:       "Action",
		ReleaseDate: "2024-01-15",
		Developer:   "Galactic Studios",
		Rating:      4.8,
		Platforms:   []string{"PC", "PlayStation", "Xbox"},
		Description: "Explore the galaxy, battle aliens, and conquer new worlds in this action-packed space adventure game.",
	}
}
