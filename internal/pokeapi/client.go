package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"
)

const (
	DefaultBaseURL = "https://pokeapi.co/api/v2"

	errorReply    = "Произошла ошибка при получении данных о покемоне."
	fallbackReply = "Извините, произошла ошибка при получении информации о покемоне."
)

// pokemon mirrors the subset of the PokeAPI response the bot formats.
// Height and weight come in tenths of a meter/kilogram.
type pokemon struct {
	Name      string `json:"name"`
	ID        int    `json:"id"`
	Height    int    `json:"height"`
	Weight    int    `json:"weight"`
	Abilities []struct {
		Ability struct {
			Name string `json:"name"`
		} `json:"ability"`
	} `json:"abilities"`
	Types []struct {
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
}

// Client looks up pokemon by name. Like the chatgpt service it never
// returns an error: every failure maps to a fixed user-facing string.
// One HTTP client is created lazily and reused for the Client's lifetime.
type Client struct {
	baseURL string

	once       sync.Once
	httpClient *http.Client
}

func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/")}
}

func (c *Client) session() *http.Client {
	c.once.Do(func() {
		c.httpClient = &http.Client{Timeout: 15 * time.Second}
	})
	return c.httpClient
}

// Close releases pooled connections. Safe to call at shutdown only;
// the client stays usable afterwards, the next call re-dials.
func (c *Client) Close() {
	if c.httpClient != nil {
		c.httpClient.CloseIdleConnections()
	}
}

// PokemonInfo returns a human-readable summary for the named pokemon.
// The name is lower-cased for the lookup; not-found and error messages
// quote it as typed.
func (c *Client) PokemonInfo(ctx context.Context, name string) string {
	reqURL := fmt.Sprintf("%s/pokemon/%s", c.baseURL, url.PathEscape(strings.ToLower(name)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		log.Printf("failed to build pokeapi request: %v", err)
		return fallbackReply
	}

	resp, err := c.session().Do(req)
	if err != nil {
		log.Printf("pokeapi request failed: %v", err)
		return fallbackReply
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Sprintf("Покемон с именем %s не найден.", name)
	case resp.StatusCode != http.StatusOK:
		return errorReply
	}

	var p pokemon
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		log.Printf("failed to decode pokeapi response: %v", err)
		return fallbackReply
	}

	return formatPokemon(p)
}

func formatPokemon(p pokemon) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🎮 Информация о покемоне %s:\n\n", capitalize(p.Name))
	b.WriteString("📊 Базовые характеристики:\n")
	fmt.Fprintf(&b, "• ID: %d\n", p.ID)
	fmt.Fprintf(&b, "• Рост: %.1f м\n", float64(p.Height)/10)
	fmt.Fprintf(&b, "• Вес: %.1f кг\n\n", float64(p.Weight)/10)

	b.WriteString("💪 Способности:\n")
	abilities := make([]string, 0, len(p.Abilities))
	for _, a := range p.Abilities {
		abilities = append(abilities, a.Ability.Name)
	}
	b.WriteString("• " + strings.Join(abilities, "\n• ") + "\n\n")

	types := make([]string, 0, len(p.Types))
	for _, t := range p.Types {
		types = append(types, t.Type.Name)
	}
	fmt.Fprintf(&b, "📋 Типы: %s", strings.Join(types, ", "))

	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
