package domain

type Table string

const (
	TableListings          Table = "listings"
	TableListingActivities Table = "listing_activities"
	TableMints             Table = "mints"
	TableTokenAccounts     Table = "token_accounts"
	TableWallets           Table = "wallets"
)
