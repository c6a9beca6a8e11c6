package stats

import (
	"github.com/osse101/PlayerLevels_Go/internal/domain"
)

// Catalog answers which statistic, material and entity names exist on the host
type Catalog interface {
	StatisticKind(name string) (domain.StatisticKind, bool)
	IsMaterial(name string) bool
	IsEntity(name string) bool
}

// MapCatalog is a Catalog backed by fixed name sets
type MapCatalog struct {
	statistics map[string]domain.StatisticKind
	materials  map[string]struct{}
	entities   map[string]struct{}
}

// NewCatalog builds a catalog from explicit name sets. Names are expected upper case.
func NewCatalog(statistics map[string]domain.StatisticKind, materials, entities []string) *MapCatalog {
	c := &MapCatalog{
		statistics: make(map[string]domain.StatisticKind, len(statistics)),
		materials:  make(map[string]struct{}, len(materials)),
		entities:   make(map[string]struct{}, len(entities)),
	}
	for name, kind := range statistics {
		c.statistics[name] = kind
	}
	for _, m := range materials {
		c.materials[m] = struct{}{}
	}
	for _, e := range entities {
		c.entities[e] = struct{}{}
	}
	return c
}

// StatisticKind implements Catalog
func (c *MapCatalog) StatisticKind(name string) (domain.StatisticKind, bool) {
	kind, ok := c.statistics[name]
	return kind, ok
}

// IsMaterial implements Catalog
func (c *MapCatalog) IsMaterial(name string) bool {
	_, ok := c.materials[name]
	return ok
}

// IsEntity implements Catalog
func (c *MapCatalog) IsEntity(name string) bool {
	_, ok := c.entities[name]
	return ok
}

// DefaultCatalog returns the vanilla statistics with their qualifier arity and
// the common materials and entity types.
func DefaultCatalog() *MapCatalog {
	return NewCatalog(defaultStatistics, defaultMaterials, defaultEntities)
}

var defaultStatistics = map[string]domain.StatisticKind{
	"DAMAGE_DEALT":               domain.StatisticUntyped,
	"DAMAGE_TAKEN":               domain.StatisticUntyped,
	"DEATHS":                     domain.StatisticUntyped,
	"MOB_KILLS":                  domain.StatisticUntyped,
	"PLAYER_KILLS":               domain.StatisticUntyped,
	"FISH_CAUGHT":                domain.StatisticUntyped,
	"ANIMALS_BRED":               domain.StatisticUntyped,
	"LEAVE_GAME":                 domain.StatisticUntyped,
	"JUMP":                       domain.StatisticUntyped,
	"DROP_COUNT":                 domain.StatisticUntyped,
	"PLAY_ONE_MINUTE":            domain.StatisticUntyped,
	"TOTAL_WORLD_TIME":           domain.StatisticUntyped,
	"WALK_ONE_CM":                domain.StatisticUntyped,
	"WALK_ON_WATER_ONE_CM":       domain.StatisticUntyped,
	"WALK_UNDER_WATER_ONE_CM":    domain.StatisticUntyped,
	"FALL_ONE_CM":                domain.StatisticUntyped,
	"SNEAK_TIME":                 domain.StatisticUntyped,
	"CLIMB_ONE_CM":               domain.StatisticUntyped,
	"FLY_ONE_CM":                 domain.StatisticUntyped,
	"MINECART_ONE_CM":            domain.StatisticUntyped,
	"BOAT_ONE_CM":                domain.StatisticUntyped,
	"PIG_ONE_CM":                 domain.StatisticUntyped,
	"HORSE_ONE_CM":               domain.StatisticUntyped,
	"SPRINT_ONE_CM":              domain.StatisticUntyped,
	"CROUCH_ONE_CM":              domain.StatisticUntyped,
	"AVIATE_ONE_CM":              domain.StatisticUntyped,
	"SWIM_ONE_CM":                domain.StatisticUntyped,
	"STRIDER_ONE_CM":             domain.StatisticUntyped,
	"TIME_SINCE_DEATH":           domain.StatisticUntyped,
	"TIME_SINCE_REST":            domain.StatisticUntyped,
	"TALKED_TO_VILLAGER":         domain.StatisticUntyped,
	"TRADED_WITH_VILLAGER":       domain.StatisticUntyped,
	"CAKE_SLICES_EATEN":          domain.StatisticUntyped,
	"CAULDRON_FILLED":            domain.StatisticUntyped,
	"CAULDRON_USED":              domain.StatisticUntyped,
	"ARMOR_CLEANED":              domain.StatisticUntyped,
	"BANNER_CLEANED":             domain.StatisticUntyped,
	"BREWINGSTAND_INTERACTION":   domain.StatisticUntyped,
	"BEACON_INTERACTION":         domain.StatisticUntyped,
	"CRAFTING_TABLE_INTERACTION": domain.StatisticUntyped,
	"FURNACE_INTERACTION":        domain.StatisticUntyped,
	"CHEST_OPENED":               domain.StatisticUntyped,
	"ENDERCHEST_OPENED":          domain.StatisticUntyped,
	"SHULKER_BOX_OPENED":         domain.StatisticUntyped,
	"OPEN_BARREL":                domain.StatisticUntyped,
	"ITEM_ENCHANTED":             domain.StatisticUntyped,
	"RECORD_PLAYED":              domain.StatisticUntyped,
	"NOTEBLOCK_PLAYED":           domain.StatisticUntyped,
	"NOTEBLOCK_TUNED":            domain.StatisticUntyped,
	"FLOWER_POTTED":              domain.StatisticUntyped,
	"TRAPPED_CHEST_TRIGGERED":    domain.StatisticUntyped,
	"SLEEP_IN_BED":               domain.StatisticUntyped,
	"RAID_TRIGGER":               domain.StatisticUntyped,
	"RAID_WIN":                   domain.StatisticUntyped,
	"BELL_RING":                  domain.StatisticUntyped,
	"TARGET_HIT":                 domain.StatisticUntyped,
	"MINE_BLOCK":                 domain.StatisticBlock,
	"USE_ITEM":                   domain.StatisticItem,
	"BREAK_ITEM":                 domain.StatisticItem,
	"CRAFT_ITEM":                 domain.StatisticItem,
	"DROP":                       domain.StatisticItem,
	"PICKUP":                     domain.StatisticItem,
	"KILL_ENTITY":                domain.StatisticEntity,
	"ENTITY_KILLED_BY":           domain.StatisticEntity,
}

var defaultMaterials = []string{
	"STONE", "COBBLESTONE", "DEEPSLATE", "COBBLED_DEEPSLATE", "GRANITE", "DIORITE", "ANDESITE",
	"DIRT", "GRASS_BLOCK", "SAND", "RED_SAND", "GRAVEL", "CLAY", "NETHERRACK", "END_STONE", "OBSIDIAN",
	"COAL_ORE", "DEEPSLATE_COAL_ORE", "IRON_ORE", "DEEPSLATE_IRON_ORE", "COPPER_ORE", "DEEPSLATE_COPPER_ORE",
	"GOLD_ORE", "DEEPSLATE_GOLD_ORE", "NETHER_GOLD_ORE", "REDSTONE_ORE", "DEEPSLATE_REDSTONE_ORE",
	"LAPIS_ORE", "DEEPSLATE_LAPIS_ORE", "DIAMOND_ORE", "DEEPSLATE_DIAMOND_ORE", "EMERALD_ORE",
	"DEEPSLATE_EMERALD_ORE", "NETHER_QUARTZ_ORE", "ANCIENT_DEBRIS",
	"OAK_LOG", "SPRUCE_LOG", "BIRCH_LOG", "JUNGLE_LOG", "ACACIA_LOG", "DARK_OAK_LOG", "MANGROVE_LOG",
	"CHERRY_LOG", "CRIMSON_STEM", "WARPED_STEM", "OAK_PLANKS", "SPRUCE_PLANKS", "BIRCH_PLANKS",
	"WHEAT", "CARROTS", "POTATOES", "BEETROOTS", "MELON", "PUMPKIN", "SUGAR_CANE", "CACTUS", "NETHER_WART",
	"COCOA", "SWEET_BERRY_BUSH", "BAMBOO", "KELP",
	"COAL", "IRON_INGOT", "GOLD_INGOT", "COPPER_INGOT", "DIAMOND", "EMERALD", "NETHERITE_INGOT",
	"REDSTONE", "LAPIS_LAZULI", "QUARTZ",
	"WOODEN_PICKAXE", "STONE_PICKAXE", "IRON_PICKAXE", "GOLDEN_PICKAXE", "DIAMOND_PICKAXE",
	"NETHERITE_PICKAXE", "WOODEN_SWORD", "STONE_SWORD", "IRON_SWORD", "GOLDEN_SWORD", "DIAMOND_SWORD",
	"NETHERITE_SWORD", "IRON_AXE", "DIAMOND_AXE", "IRON_SHOVEL", "DIAMOND_SHOVEL", "IRON_HOE",
	"BOW", "CROSSBOW", "TRIDENT", "FISHING_ROD", "SHIELD", "ELYTRA", "FLINT_AND_STEEL", "SHEARS",
	"BREAD", "COOKED_BEEF", "COOKED_PORKCHOP", "COOKED_CHICKEN", "COOKED_MUTTON", "COOKED_COD",
	"COOKED_SALMON", "APPLE", "GOLDEN_APPLE", "ENCHANTED_GOLDEN_APPLE", "CAKE", "POTION",
	"TORCH", "CRAFTING_TABLE", "FURNACE", "CHEST", "ENDER_PEARL", "ENDER_EYE", "EXPERIENCE_BOTTLE",
	"TNT", "ARROW", "FIREWORK_ROCKET",
}

var defaultEntities = []string{
	"ZOMBIE", "ZOMBIE_VILLAGER", "HUSK", "DROWNED", "SKELETON", "STRAY", "WITHER_SKELETON", "CREEPER",
	"SPIDER", "CAVE_SPIDER", "ENDERMAN", "ENDERMITE", "SILVERFISH", "SLIME", "MAGMA_CUBE", "BLAZE",
	"GHAST", "WITCH", "PHANTOM", "PILLAGER", "VINDICATOR", "EVOKER", "VEX", "RAVAGER", "GUARDIAN",
	"ELDER_GUARDIAN", "SHULKER", "HOGLIN", "ZOGLIN", "PIGLIN", "PIGLIN_BRUTE", "ZOMBIFIED_PIGLIN",
	"WARDEN", "BREEZE", "WITHER", "ENDER_DRAGON",
	"COW", "PIG", "SHEEP", "CHICKEN", "RABBIT", "HORSE", "DONKEY", "MULE", "LLAMA", "WOLF", "CAT",
	"FOX", "BEE", "GOAT", "AXOLOTL", "FROG", "TURTLE", "DOLPHIN", "SQUID", "GLOW_SQUID", "COD",
	"SALMON", "PUFFERFISH", "TROPICAL_FISH", "VILLAGER", "WANDERING_TRADER", "IRON_GOLEM",
	"SNOW_GOLEM", "POLAR_BEAR", "PANDA", "PARROT", "MOOSHROOM", "STRIDER", "SNIFFER", "CAMEL",
	"ARMADILLO", "PLAYER",
}
