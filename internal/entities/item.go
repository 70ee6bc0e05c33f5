package entities

// Equipment slot names. The armor and evasion scans walk every occupied
// slot, not just these two, so additional slots need no code changes.
const (
	SlotMainHand = "mainHand"
	SlotOffHand  = "offHand"
)

// ItemInstance is a concrete owned item in a player's inventory. Definitions
// live in the content registry; instances only carry identity, quantity, and
// rolled metadata.
type ItemInstance struct {
	InstanceID string         `json:"instanceId"`
	ItemID     string         `json:"itemId"`
	Quantity   int            `json:"quantity"`
	Qualities  map[string]int `json:"qualities,omitempty"`
	Traits     []string       `json:"traits,omitempty"`
}
