package main

import (
	"context"
	"io"
	"time"

	"healthhub-directory/config"
	"healthhub-directory/internal/domain/entity"
	"healthhub-directory/internal/infrastructure/feed"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Feed        feed.Client
	Placeholder string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Source  string        `help:"Directory feed URL" env:"DIRECTORY_SOURCE_URL" default:"${source}"`
	Timeout time.Duration `help:"Feed request timeout (0 waits indefinitely)" env:"DIRECTORY_FETCH_TIMEOUT" default:"30s"`

	List        ListCmd        `cmd:"" help:"List doctors matching the filters"`
	Specialties SpecialtiesCmd `cmd:"" help:"List every specialty in the directory"`
	Suggest     SuggestCmd     `cmd:"" help:"Show search suggestions for a name fragment"`
	Link        LinkCmd        `cmd:"" help:"Print the page link for a set of filters"`
}

// FilterFlags are the directory filters shared by list and link.
type FilterFlags struct {
	Query     string   `short:"q" help:"Case-insensitive name search"`
	Consult   string   `short:"c" help:"Consultation mode: video or clinic"`
	Specialty []string `short:"s" help:"Specialty to include (repeatable)"`
	Sort      string   `help:"Sort order: fees or experience"`
}

// State converts the flags to a filter state. Tokens are passed through unchecked.
func (f FilterFlags) State() entity.FilterState {
	state := entity.FilterState{
		Query:       f.Query,
		ConsultType: entity.ConsultType(f.Consult),
		Sort:        entity.SortKey(f.Sort),
	}
	if len(f.Specialty) > 0 {
		state.Specialties = append([]string(nil), f.Specialty...)
	}
	return state
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	FilterFlags `embed:""`
	JSON        bool `help:"Print cards as JSON"`
}

// SpecialtiesCmd is the "specialties" subcommand.
type SpecialtiesCmd struct{}

// SuggestCmd is the "suggest" subcommand.
type SuggestCmd struct {
	Input string `arg:"" help:"Name fragment"`
}

// LinkCmd is the "link" subcommand.
type LinkCmd struct {
	FilterFlags `embed:""`
	Base        string `help:"Page URL the query is appended to" default:"http://localhost:8080/"`
}

var cliVars = map[string]string{
	"source": config.DefaultSourceURL,
}
