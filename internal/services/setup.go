package services

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/doeshing/devzap/internal/domain"
	"github.com/doeshing/devzap/internal/ports"
)

// SetupService runs the interactive first-time setup: collect the API key,
// validate it, and let the user pick a model from the live listing.
type SetupService struct {
	ConfigStore ports.ConfigStore
	Client      ports.CompletionClient
	In          io.Reader
	Out         io.Writer
	Logger      ports.Logger
}

// Run drives the setup dialog and persists the resulting config.
func (s *SetupService) Run(ctx context.Context) error {
	reader := bufio.NewReader(s.In)

	fmt.Fprintln(s.Out, strings.Repeat("=", 50))
	fmt.Fprintln(s.Out, "Welcome to DevZap Setup!")
	fmt.Fprintln(s.Out, strings.Repeat("=", 50))

	fmt.Fprint(s.Out, "\nEnter your OpenRouter API key: ")
	key, err := readLine(reader)
	if err != nil {
		return err
	}
	if key == "" {
		return fmt.Errorf("no API key entered")
	}

	if err := s.Client.ValidateKey(ctx, key); err != nil {
		return fmt.Errorf("API key validation failed: %w", err)
	}

	fmt.Fprintln(s.Out, "\nFetching models...")
	models := s.fetchModelIDs(ctx, key)

	fmt.Fprintln(s.Out, "\nAvailable Models:")
	for i, id := range models {
		fmt.Fprintf(s.Out, "%d. %s\n", i+1, id)
	}
	fmt.Fprint(s.Out, "\nSelect a model (number) or enter custom ID: ")
	choice, err := readLine(reader)
	if err != nil {
		return err
	}

	model := choice
	if n, convErr := strconv.Atoi(choice); convErr == nil && n >= 1 && n <= len(models) {
		model = models[n-1]
	}
	if model == "" {
		model = domain.DefaultModel
	}

	cfg, err := s.ConfigStore.Load(ctx)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.APIKey = key
	cfg.Model = model
	if err := s.ConfigStore.Save(cfg); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Fprintf(s.Out, "\nSetup completed! Config written to %s\n", s.ConfigStore.Path())
	return nil
}

// fetchModelIDs lists live models, falling back to the static list when the
// fetch fails or comes back empty. Only setup falls back; list-models
// surfaces failures.
func (s *SetupService) fetchModelIDs(ctx context.Context, key string) []string {
	models, err := s.Client.ListModels(ctx, key)
	if err != nil || len(models) == 0 {
		if err != nil && s.Logger != nil {
			s.Logger.Warn("model listing failed, using fallback", map[string]interface{}{"error": err.Error()})
		}
		return domain.FallbackModels
	}
	ids := make([]string, 0, len(models))
	for _, m := range models {
		if m.ID != "" {
			ids = append(ids, m.ID)
		}
	}
	if len(ids) == 0 {
		return domain.FallbackModels
	}
	return ids
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		if err == io.EOF {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
