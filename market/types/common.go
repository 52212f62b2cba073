package types

// CommunityURL is the default marketplace host. Tests and alternative
// deployments override it through the client config.
const CommunityURL = "https://steamcommunity.com"

// CommunityDomain keys the session cookies shared with the login layer.
const CommunityDomain = "steamcommunity.com"

// Currency is the wallet currency code sent with priced requests.
// The account wallet currency must match, otherwise the marketplace
// rejects buy orders with a non-canonical success code.
type Currency int

const (
	CurrencyUSD Currency = 1
	CurrencyGBP Currency = 2
	CurrencyEUR Currency = 3
	CurrencyCHF Currency = 4
	CurrencyRUB Currency = 5
	CurrencyPLN Currency = 6
	CurrencyBRL Currency = 7
	CurrencyJPY Currency = 8
	CurrencyNOK Currency = 9
	CurrencyIDR Currency = 10
	CurrencyMYR Currency = 11
	CurrencyPHP Currency = 12
	CurrencySGD Currency = 13
	CurrencyTHB Currency = 14
	CurrencyVND Currency = 15
	CurrencyKRW Currency = 16
	CurrencyTRY Currency = 17
	CurrencyUAH Currency = 18
	CurrencyMXN Currency = 19
	CurrencyCAD Currency = 20
	CurrencyAUD Currency = 21
	CurrencyNZD Currency = 22
	CurrencyCNY Currency = 23
	CurrencyINR Currency = 24
	CurrencyHKD Currency = 29
)

// GameOptions identifies which sub-application's marketplace is targeted:
// the application id plus the inventory context id. Supplied per call,
// never mutated.
type GameOptions struct {
	AppID     string
	ContextID string
}

var (
	GameCSGO  = GameOptions{AppID: "730", ContextID: "2"}
	GameDota2 = GameOptions{AppID: "570", ContextID: "2"}
	GameTF2   = GameOptions{AppID: "440", ContextID: "2"}
	GameRust  = GameOptions{AppID: "252490", ContextID: "2"}
	GamePUBG  = GameOptions{AppID: "578080", ContextID: "2"}
)

// Guard is the confirmation guard record established by the login layer.
// IdentitySecret is consumed by the external confirmation service only;
// this package never signs with it.
type Guard struct {
	SteamID        string
	IdentitySecret string
}
