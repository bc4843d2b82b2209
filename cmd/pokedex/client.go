package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pokedex/internal/view"
	"pokedex/internal/web"
	"pokedex/pkg/models"
)

const defaultServerURL = "http://localhost:8080"

// newClientCmds builds the terminal client commands. They talk to a running
// server's JSON API, so they show exactly what the pages would.
func newClientCmds(a *app) []*cobra.Command {
	var server string
	httpClient := &http.Client{Timeout: 60 * time.Second}

	list := &cobra.Command{
		Use:   "list",
		Short: "Print the first page of Pokémon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp web.ListResponse
			if err := a.getJSON(cmd.Context(), httpClient, server+"/api/pokemon", &resp); err != nil {
				return err
			}
			printList(cmd.OutOrStdout(), resp.Phase, resp.Items)
			return nil
		},
	}

	var query, category string
	var selected int
	search := &cobra.Command{
		Use:   "search",
		Short: "Search the first generation by name and type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := url.Parse(server + "/api/dex")
			if err != nil {
				return fmt.Errorf("invalid server url: %w", err)
			}
			q := u.Query()
			if query != "" {
				q.Set("q", query)
			}
			if category != "" {
				q.Set("type", category)
			}
			if selected > 0 {
				q.Set("selected", fmt.Sprint(selected))
			}
			u.RawQuery = q.Encode()

			var snap view.Snapshot
			if err := a.getJSON(cmd.Context(), httpClient, u.String(), &snap); err != nil {
				return err
			}
			printIndex(cmd.OutOrStdout(), snap)
			return nil
		},
	}
	search.Flags().StringVarP(&query, "q", "q", "", "name search (case-insensitive substring)")
	search.Flags().StringVarP(&category, "type", "t", "", "type filter (default all)")
	search.Flags().IntVar(&selected, "selected", 0, "show the modal for this id")

	show := &cobra.Command{
		Use:   "show <id|name>",
		Short: "Print one Pokémon's detail page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp web.DetailResponse
			endpoint := server + "/api/pokemon/" + url.PathEscape(strings.TrimSpace(args[0]))
			if err := a.getJSON(cmd.Context(), httpClient, endpoint, &resp); err != nil {
				return err
			}
			printDetail(cmd.OutOrStdout(), resp.Pokemon)
			return nil
		},
	}

	cmds := []*cobra.Command{list, search, show}
	for _, c := range cmds {
		c.Flags().StringVar(&server, "server", defaultServerURL, "pokedex server URL")
	}
	return cmds
}

func (a *app) getJSON(ctx context.Context, client *http.Client, endpoint string, out any) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if a.logger != nil {
		a.logger.Debug("client request", zap.String("url", endpoint))
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("GET %s failed: %s", endpoint, strings.TrimSpace(string(data)))
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", endpoint, err)
	}
	return nil
}

func printList(w io.Writer, phase view.Phase, items []models.Pokemon) {
	if phase != view.Rendered {
		return
	}
	for _, p := range items {
		fmt.Fprintf(w, "#%03d %-14s %s\n", p.ID, p.Name, strings.Join(p.Types, "/"))
	}
}

func printIndex(w io.Writer, s view.Snapshot) {
	if s.Phase != view.Rendered {
		return
	}
	fmt.Fprintf(w, "types: %s\n", strings.Join(s.Categories, ", "))
	fmt.Fprintf(w, "showing %d of %d (search=%q type=%s)\n", len(s.Items), s.Total, s.Search, s.Category)
	printList(w, s.Phase, s.Items)
	if s.Selected != nil {
		fmt.Fprintf(w, "\n[selected] %s (%s)\n", s.Selected.Name, strings.Join(s.Selected.Types, "/"))
	}
}

func printDetail(w io.Writer, d *models.PokemonDetail) {
	if d == nil {
		fmt.Fprintln(w, "Loading...")
		return
	}
	fmt.Fprintf(w, "#%03d %s\n", d.ID, d.Name)
	fmt.Fprintf(w, "Types: %s\n", strings.Join(d.Types, ", "))
	fmt.Fprintf(w, "Height: %s m\n", models.FormatTenths(d.Height))
	fmt.Fprintf(w, "Weight: %s kg\n", models.FormatTenths(d.Weight))
	fmt.Fprintln(w, "Abilities:")
	for _, ab := range d.Abilities {
		fmt.Fprintf(w, "  %s\n", ab)
	}
	fmt.Fprintln(w, "Stats:")
	for _, st := range d.Stats {
		fmt.Fprintf(w, "  %s: %d\n", st.Name, st.Base)
	}
}
