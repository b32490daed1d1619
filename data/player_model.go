package data

// InventoryItem identifies a collectable the player can carry.
type InventoryItem string

const (
	InventoryItemBlueKey     InventoryItem = "blue-key"
	InventoryItemCircuitCard InventoryItem = "circuit-card"
	InventoryItemRapidFire   InventoryItem = "rapid-fire"
)

// WeaponType is the currently equipped weapon.
type WeaponType int

const (
	WeaponNormal WeaponType = iota
	WeaponLaser
	WeaponRocket
	WeaponFlame
)

const (
	MaxHealth = 9
	MaxAmmo   = 32
)

// PlayerModel is the player's persistent stats. The live instance mutates
// during play; a value copy taken right after level load is assigned back
// wholesale on restart, so pickups and damage from the failed attempt are
// discarded while pre-level progress survives.
type PlayerModel struct {
	Health    int
	Ammo      int
	Score     int
	Weapon    WeaponType
	Inventory []InventoryItem
}

// NewPlayerModel returns the stats a fresh player starts an episode with.
func NewPlayerModel() PlayerModel {
	return PlayerModel{
		Health: MaxHealth,
		Ammo:   MaxAmmo,
		Weapon: WeaponNormal,
	}
}

// Snapshot returns a value copy safe to assign back later. The inventory
// slice is copied so mutations of the live model never alias the snapshot.
func (m PlayerModel) Snapshot() PlayerModel {
	copyOf := m
	copyOf.Inventory = append([]InventoryItem(nil), m.Inventory...)
	return copyOf
}

// Equal reports whether both models hold identical stats and inventory.
func (m PlayerModel) Equal(other PlayerModel) bool {
	if m.Health != other.Health || m.Ammo != other.Ammo ||
		m.Score != other.Score || m.Weapon != other.Weapon {
		return false
	}
	if len(m.Inventory) != len(other.Inventory) {
		return false
	}
	for i := range m.Inventory {
		if m.Inventory[i] != other.Inventory[i] {
			return false
		}
	}
	return true
}

// GiveHealth raises health by amount, capped at MaxHealth.
func (m *PlayerModel) GiveHealth(amount int) {
	m.Health += amount
	if m.Health > MaxHealth {
		m.Health = MaxHealth
	}
}

// GiveAmmo raises ammo by amount, capped at MaxAmmo.
func (m *PlayerModel) GiveAmmo(amount int) {
	m.Ammo += amount
	if m.Ammo > MaxAmmo {
		m.Ammo = MaxAmmo
	}
}

// TakeDamage lowers health by amount, floored at zero.
func (m *PlayerModel) TakeDamage(amount int) {
	m.Health -= amount
	if m.Health < 0 {
		m.Health = 0
	}
}

// HasItem reports whether the inventory contains item.
func (m *PlayerModel) HasItem(item InventoryItem) bool {
	for _, have := range m.Inventory {
		if have == item {
			return true
		}
	}
	return false
}
