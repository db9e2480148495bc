package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"

	"pet_market/internal/domain/entity"
	"pet_market/internal/domain/service/dashboard"
	"pet_market/internal/domain/value"
	"pet_market/internal/worker"
)

var commands = []subcommands.Command{ //nolint:gochecknoglobals
	&analyzeCmd{},
	&searchCmd{},
	&statusCmd{},
	&copyCmd{},
	&prefsCmd{},
}

// outputFlags are shared by the commands that print a result list.
type outputFlags struct {
	json  bool
	limit int
}

func (o *outputFlags) register(f *flag.FlagSet) {
	f.BoolVar(&o.json, "json", false, "Print the view as JSON.")
	f.IntVar(&o.limit, "n", 0, "Print at most n records (0 prints all).")
}

func (o *outputFlags) print(view entity.View) subcommands.ExitStatus {
	if o.limit > 0 && len(view.Records) > o.limit {
		view.Records = view.Records[:o.limit]
	}

	var err error
	if o.json {
		err = writeJSON(os.Stdout, view)
	} else {
		err = writeView(os.Stdout, view)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if view.Error != "" {
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, err)
	return subcommands.ExitFailure
}

type analyzeCmd struct {
	out   outputFlags
	skill string
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "rank every pet for the selected skill" }
func (*analyzeCmd) Usage() string {
	return `petctl analyze [-skill <skill>] [-n <count>] [-json]

  Fetches the full ranking and prints the records that pass the saved
  filters. -skill changes the saved selected skill before fetching.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	c.out.register(f)
	f.StringVar(&c.skill, "skill", "", "Selected skill (All, Mining, Fishing, ...).")
}

func (c *analyzeCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	ctx, e, err := newEnv(ctx)
	if err != nil {
		return fail(err)
	}
	defer e.Close(ctx)

	if c.skill != "" {
		skill, err := value.ParseSkill(c.skill)
		if err != nil {
			return fail(err)
		}

		if skill != e.dashboard.Preferences().SelectedSkill {
			// A skill change refetches on its own.
			view, _ := e.dashboard.UpdatePreferences(ctx, dashboard.PreferencesPatch{SelectedSkill: &skill})
			return c.out.print(view)
		}
	}

	// Failures are carried in view.Error.
	view, _ := e.dashboard.Analyze(ctx)

	return c.out.print(view)
}

type searchCmd struct {
	out outputFlags
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "rank pets matching a search term" }
func (*searchCmd) Usage() string {
	return `petctl search [-n <count>] [-json] <term>...

  Asks the backend for pets matching the term and prints the records that
  pass the saved filters.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	c.out.register(f)
}

func (c *searchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	term := strings.TrimSpace(strings.Join(f.Args(), " "))
	if term == "" {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}

	ctx, e, err := newEnv(ctx)
	if err != nil {
		return fail(err)
	}
	defer e.Close(ctx)

	view, _ := e.dashboard.Search(ctx, term)

	return c.out.print(view)
}

type statusCmd struct{}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "show the countdown to the next market refresh" }
func (*statusCmd) Usage() string {
	return `petctl status

  Queries the backend refresh cycle once and prints the countdown.
`
}

func (*statusCmd) SetFlags(*flag.FlagSet) {}

func (*statusCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	ctx, e, err := newEnv(ctx)
	if err != nil {
		return fail(err)
	}
	defer e.Close(ctx)

	countdown, _ := worker.NewUpdateClock(e.gateway).Tick(ctx)

	if err := writeCountdown(os.Stdout, countdown); err != nil {
		return fail(err)
	}

	if countdown.State == entity.ClockUnknown {
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}

type copyCmd struct{}

func (*copyCmd) Name() string     { return "copy" }
func (*copyCmd) Synopsis() string { return "copy the in-game auction command to the clipboard" }
func (*copyCmd) Usage() string {
	return `petctl copy <auction-uuid>

  Writes "/viewauction <uuid>" to the system clipboard.
`
}

func (*copyCmd) SetFlags(*flag.FlagSet) {}

func (c *copyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}

	ctx, e, err := newEnv(ctx)
	if err != nil {
		return fail(err)
	}
	defer e.Close(ctx)

	payload, err := e.dashboard.CopyReference(ctx, f.Arg(0))
	if err != nil {
		return fail(err)
	}

	fmt.Fprintf(os.Stdout, "copied: %s\n", payload)

	return subcommands.ExitSuccess
}

type prefsCmd struct {
	sortBy   string
	filter   string
	rarities string
	toggle   string
	compact  string
}

func (*prefsCmd) Name() string     { return "prefs" }
func (*prefsCmd) Synopsis() string { return "show or change saved dashboard preferences" }
func (*prefsCmd) Usage() string {
	return `petctl prefs [-sort <field>] [-filter <skill>] [-rarities <list>] [-toggle <rarity>] [-compact true|false]

  Without flags prints the saved preferences. Each flag changes one
  preference and saves it.
`
}

func (c *prefsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sortBy, "sort", "", "Sort field (profit, coins_per_xp, ...).")
	f.StringVar(&c.filter, "filter", "", "Pet skill filter (All, Mining, ...).")
	f.StringVar(&c.rarities, "rarities", "", "Comma-separated active rarities.")
	f.StringVar(&c.toggle, "toggle", "", "Rarity to switch on or off.")
	f.StringVar(&c.compact, "compact", "", "Compact mode.")
}

func (c *prefsCmd) patch() (dashboard.PreferencesPatch, error) {
	var patch dashboard.PreferencesPatch

	if c.sortBy != "" {
		field, err := value.ParseSortField(c.sortBy)
		if err != nil {
			return patch, err
		}

		patch.SortBy = &field
	}

	if c.filter != "" {
		skill, err := value.ParseSkill(c.filter)
		if err != nil {
			return patch, err
		}

		patch.PetSkillFilter = &skill
	}

	if c.rarities != "" {
		set := value.ParseRaritySet(c.rarities)
		patch.ActiveRarities = &set
	}

	if c.compact != "" {
		compact, err := strconv.ParseBool(c.compact)
		if err != nil {
			return patch, fmt.Errorf("compact: %w", err)
		}

		patch.CompactMode = &compact
	}

	return patch, nil
}

func (c *prefsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	patch, err := c.patch()
	if err != nil {
		return fail(err)
	}

	var toggle value.Rarity
	if c.toggle != "" {
		if toggle, err = value.ParseRarity(c.toggle); err != nil {
			return fail(err)
		}
	}

	ctx, e, err := newEnv(ctx)
	if err != nil {
		return fail(err)
	}
	defer e.Close(ctx)

	if _, err := e.dashboard.UpdatePreferences(ctx, patch); err != nil {
		return fail(err)
	}

	if c.toggle != "" {
		if _, err := e.dashboard.ToggleRarity(ctx, toggle); err != nil {
			return fail(err)
		}
	}

	if err := writePreferences(os.Stdout, e.dashboard.Preferences()); err != nil {
		return fail(err)
	}

	return subcommands.ExitSuccess
}
