package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"healthhub-directory/internal/converter"
	"healthhub-directory/internal/domain/entity"
	"healthhub-directory/internal/usecase"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	doctors, err := deps.Feed.FetchDoctors(deps.Ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch doctors: %w", err)
	}

	results := usecase.ApplyFilters(doctors, c.State())
	cards := converter.DoctorsToCards(results, deps.Placeholder)

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cards)
	}

	fmt.Fprintln(deps.Stdout, converter.CountLabel(len(cards)))
	if len(cards) == 0 {
		fmt.Fprintln(deps.Stdout, "No doctors found. Try adjusting your filters or search terms.")
		return nil
	}

	w := tabwriter.NewWriter(deps.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSPECIALITIES\tEXPERIENCE\tFEE\tMODES")
	for _, card := range cards {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			card.ID, card.Name, card.SpecialityText, card.ExperienceLabel, card.Fee, modes(card.VideoConsult, card.InClinic))
	}
	return w.Flush()
}

func modes(video, clinic bool) string {
	var out []string
	if video {
		out = append(out, entity.ConsultVideo.Label())
	}
	if clinic {
		out = append(out, entity.ConsultClinic.Label())
	}
	return strings.Join(out, ", ")
}

// Run executes the specialties command.
func (c *SpecialtiesCmd) Run(deps *Dependencies) error {
	doctors, err := deps.Feed.FetchDoctors(deps.Ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch doctors: %w", err)
	}

	for _, name := range entity.DistinctSpecialities(doctors) {
		fmt.Fprintln(deps.Stdout, name)
	}
	return nil
}

// Run executes the suggest command.
func (c *SuggestCmd) Run(deps *Dependencies) error {
	doctors, err := deps.Feed.FetchDoctors(deps.Ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch doctors: %w", err)
	}

	for _, d := range usecase.Suggest(doctors, c.Input) {
		fmt.Fprintf(deps.Stdout, "%s\t%s\n", d.Name, strings.Join(d.SpecialityNames(), ", "))
	}
	return nil
}
