package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	jsoniter "github.com/json-iterator/go"

	"pet_market/internal/domain/entity"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	return nil
}

func writeView(w io.Writer, view entity.View) error {
	if view.Error != "" {
		if _, err := fmt.Fprintln(w, view.Error); err != nil {
			return err
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "#\tNAME\tRARITY\tSKILL\tPROFIT\tNO TAX\tCOINS/XP\tLOW\tHIGH\tHIGH 24H\tDEV %")

	for _, r := range view.Records {
		alert := ""
		if r.Alert {
			alert = " !"
		}

		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s %s\t%s %s\t%s\t%.2f%s\n",
			r.Rank, r.Name, r.Rarity, r.Skill,
			r.Profit, r.ProfitWithoutTax, r.CoinsPerXP,
			r.Low.Label, r.Low.Price, r.High.Label, r.High.Price, r.High.DayAvg,
			r.DeviationPercent, alert,
		)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	return nil
}

func writeCountdown(w io.Writer, c entity.Countdown) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "state\t%s\n", c.State)

	if c.LastUpdate != nil {
		fmt.Fprintf(tw, "last update\t%s\n", c.LastUpdate.Format(time.DateTime))
	}

	if c.State != entity.ClockUnknown {
		fmt.Fprintf(tw, "next update\t%s\n", c.NextUpdate.Format(time.DateTime))
	}

	if c.State == entity.ClockCounting {
		fmt.Fprintf(tw, "remaining\t%s\n", time.Duration(c.SecondsRemaining)*time.Second)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	return nil
}

func writePreferences(w io.Writer, p entity.Preferences) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "selected skill\t%s\n", p.SelectedSkill)
	fmt.Fprintf(tw, "sort by\t%s\n", p.SortBy)
	fmt.Fprintf(tw, "pet skill filter\t%s\n", p.PetSkillFilter)
	fmt.Fprintf(tw, "rarities\t%s\n", p.ActiveRarities)
	fmt.Fprintf(tw, "compact\t%t\n", p.CompactMode)

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	return nil
}
