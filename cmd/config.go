package cmd

// Config carries the raw environment values the application starts from.
// Everything stays a string here; typed parsing (amounts, flags, IDs)
// happens once in NewCompositionRoot.
type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	OwnerIDs               string
	DispatchWebhookURL     string
	SessionTTLMinutes      string
	DiscountGlobalActive   string
	DiscountGlobalAmount   string
	DiscountPromoCode      string
	DiscountPromoAmount    string
	DiscountLoyaltyEnabled string
	DiscountLoyaltyEvery   string
	DiscountLoyaltyAmount  string
}
