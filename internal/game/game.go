package game

import (
	"context"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gridvale/internal/gamedata"
	"github.com/samdwyer/gridvale/internal/inventory"
	"github.com/samdwyer/gridvale/internal/progression"
	"github.com/samdwyer/gridvale/internal/save"
	"github.com/samdwyer/gridvale/internal/telemetry"
	"github.com/samdwyer/gridvale/internal/ui"
	"github.com/samdwyer/gridvale/internal/world"
)

// encounterChance is 1-in-N per step onto plain floor.
const encounterChance = 12

// Game holds the entire shell state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	logger   *slog.Logger

	worldMap       *world.Map
	partyX, partyY int

	data  *save.SaveData
	store *save.Store

	heroes    *gamedata.HeroRegistry
	enemies   *gamedata.EnemyRegistry
	abilities *gamedata.AbilityRegistry
	items     *gamedata.ItemRegistry
	table     progression.LevelTable

	loot *inventory.Engine
	rng  *rand.Rand

	state   State
	running bool
	message string

	// sessionMark is where the play-time clock last folded into the save.
	sessionMark time.Time

	encounter *encounterState
}

// New loads the save slot and initializes the screen and registries.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	store, err := save.NewStore(cfg.SavePath)
	if err != nil {
		screen.Close()
		return nil, err
	}

	data, found, err := store.Load(cfg.SaveSlot)
	if err != nil {
		screen.Close()
		store.Close()
		return nil, err
	}
	if !found {
		data = save.DefaultSave(cfg.SaveSlot)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	logger := slog.Default()

	g := &Game{
		cfg:         cfg,
		screen:      screen,
		renderer:    ui.NewRenderer(screen),
		logger:      logger,
		worldMap:    world.NewMap(),
		data:        data,
		store:       store,
		heroes:      gamedata.MustLoadHeroRegistry(),
		enemies:     gamedata.MustLoadEnemyRegistry(),
		abilities:   gamedata.MustLoadAbilityRegistry(),
		items:       gamedata.MustLoadItemRegistry(),
		table:       progression.NewLevelTable(gamedata.MustLoadXPThresholds()),
		rng:         rng,
		state:       StateExplore,
		running:     true,
		message:     "Welcome to Gridvale. Arrows move, E equips, B spends tokens, Tab cycles, Q quits.",
		sessionMark: time.Now(),
	}
	g.loot = inventory.NewEngine(g.items, &data.Inventory, data.Chests, rng, logger)
	g.prerollChests()
	g.restorePosition()
	return g, nil
}

// prerollChests fixes the contents of every chest on the map up front, so a
// save taken before a chest is opened already knows what it will hold.
func (g *Game) prerollChests() {
	for _, c := range g.worldMap.Chests() {
		g.loot.PreGenerateChestContents(c.ID)
	}
}

// restorePosition places the party where the save left it, falling back to
// the map's start position when the save is fresh, names a different map, or
// points at a tile that is no longer walkable.
func (g *Game) restorePosition() {
	g.partyX, g.partyY = g.worldMap.StartPosition()
	if g.data.MapID == g.worldMap.ID && g.worldMap.IsPassable(g.data.PartyX, g.data.PartyY) {
		g.partyX, g.partyY = g.data.PartyX, g.data.PartyY
	}
	g.data.MapID = g.worldMap.ID
}

// syncSession folds the current session into the save before it is written:
// where the party stands and how long they have played. The mark advances by
// whole seconds so sub-second remainders carry to the next sync.
func (g *Game) syncSession(now time.Time) {
	g.data.MapID = g.worldMap.ID
	g.data.PartyX, g.data.PartyY = g.partyX, g.partyY

	secs := int64(now.Sub(g.sessionMark) / time.Second)
	if secs > 0 {
		g.data.PlaySeconds += secs
		g.sessionMark = g.sessionMark.Add(time.Duration(secs) * time.Second)
	}
}

// Run executes the main game loop until quit, saving on exit.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.init")
	span.SetAttributes(
		attribute.Int("save.slot", g.cfg.SaveSlot),
		attribute.Int("heroes", len(g.data.Heroes)),
		attribute.Int("chests", len(g.worldMap.Chests())),
	)
	span.End()

	for g.running {
		g.render()
		g.handleInput(ctx)
	}

	g.syncSession(time.Now())
	if err := g.store.Save(g.data); err != nil {
		g.logger.Error("failed to save on exit", "err", err)
	}
	g.screen.Close()
	return g.store.Close()
}

func (g *Game) render() {
	switch g.state {
	case StateBattle:
		b := g.encounter.battle
		g.renderer.RenderBattle(b.HeroUnits(), b.EnemyUnits(), g.encounter.active(), g.message)
	default:
		g.renderer.RenderExplore(g.worldMap, g.partyX, g.partyY, g.openedChests(), g.message)
	}
}

func (g *Game) openedChests() map[string]bool {
	opened := make(map[string]bool, len(g.data.Chests))
	for id, c := range g.data.Chests {
		if c.Opened {
			opened[id] = true
		}
	}
	return opened
}

func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			g.running = false
			return
		}
		if ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q') {
			g.running = false
			return
		}
		if g.state == StateBattle {
			g.handleBattleKey(ctx, ev)
		} else {
			g.handleExploreKey(ctx, ev)
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

func (g *Game) handleExploreKey(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyUp:
		g.tryMove(ctx, 0, -1)
	case tcell.KeyDown:
		g.tryMove(ctx, 0, 1)
	case tcell.KeyLeft:
		g.tryMove(ctx, -1, 0)
	case tcell.KeyRight:
		g.tryMove(ctx, 1, 0)
	case tcell.KeyTab:
		g.cycleActiveHero()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'e', 'E':
			g.equipNext()
		case 'r', 'R':
			g.unequipActive()
		case 'b', 'B':
			g.spendBonusToken()
		}
	}
}

// tryMove moves the party, then resolves whatever the new tile holds: a
// chest to open or a chance of a random encounter.
func (g *Game) tryMove(ctx context.Context, dx, dy int) {
	newX, newY := g.partyX+dx, g.partyY+dy
	if !g.worldMap.IsPassable(newX, newY) {
		return
	}
	g.partyX, g.partyY = newX, newY

	if chest, ok := g.worldMap.ChestAt(newX, newY); ok {
		g.openChest(ctx, chest.ID)
		return
	}
	if g.rng.Intn(encounterChance) == 0 {
		g.startBattle(ctx)
	}
}

func (g *Game) openChest(ctx context.Context, chestID string) {
	tracer := telemetry.Tracer("loot")
	_, span := tracer.Start(ctx, "chest.open")
	span.SetAttributes(attribute.String("chest", chestID))
	defer span.End()

	contents, opened := g.loot.OpenChest(chestID)
	if !opened {
		g.message = "The chest is empty."
		span.SetAttributes(attribute.Bool("already_opened", true))
		return
	}

	names := make([]string, 0, len(contents))
	for _, id := range contents {
		if def := g.items.GetByID(id); def != nil {
			names = append(names, def.Name)
		}
	}
	span.SetAttributes(attribute.StringSlice("contents", contents))
	if len(names) == 0 {
		g.message = "The chest held nothing of use."
		return
	}
	g.message = "Found: " + strings.Join(names, ", ")
}
