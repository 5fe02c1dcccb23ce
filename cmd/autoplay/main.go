// Command autoplay plays the number challenge against a running server over
// the REST API. It creates (or resumes) a session and keeps attempting games
// with a proportional placement strategy until it wins or gives up.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

type GameState struct {
	Slots        []int  `json:"slots"`
	Rows         int    `json:"rows"`
	Columns      int    `json:"columns"`
	CurrentValue int    `json:"current_value"`
	PlacedCount  int    `json:"placed_count"`
	Message      string `json:"message"`
	GameOver     bool   `json:"game_over"`
	Victory      bool   `json:"victory"`
	ConfigName   string `json:"config_name"`
	ValidSlots   []int  `json:"valid_slots"`
}

type GameConfig struct {
	Name     string `json:"name"`
	Rows     int    `json:"rows"`
	Columns  int    `json:"columns"`
	MinValue int    `json:"min_value"`
	MaxValue int    `json:"max_value"`
}

type SessionResponse struct {
	ID         string      `json:"id"`
	ConfigName string      `json:"config_name"`
	GameState  *GameState  `json:"game_state"`
	GameConfig *GameConfig `json:"game_config"`
}

type PlaceRequest struct {
	SlotIndex int  `json:"slot_index"`
	Reset     bool `json:"reset,omitempty"`
}

type PlaceResponse struct {
	Success   bool       `json:"success"`
	GameState *GameState `json:"game_state"`
	Message   string     `json:"message"`
}

type ResetResponse struct {
	Message string     `json:"message"`
	State   *GameState `json:"state"`
}

type Client struct {
	baseURL   string
	sessionID string
	config    *GameConfig
	client    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) CreateSession(configID string) (*GameState, error) {
	var reqBody []byte
	var err error

	if configID != "" {
		reqBody, err = json.Marshal(map[string]string{"config_id": configID})
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
	}

	resp, err := c.client.Post(c.baseURL+"/api/sessions", "application/json", bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("create session failed: %s - %s", resp.Status, string(body))
	}

	var session SessionResponse
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("parse session response: %w", err)
	}

	c.sessionID = session.ID
	c.config = session.GameConfig
	return session.GameState, nil
}

func (c *Client) GetSession() (*GameState, error) {
	url := fmt.Sprintf("%s/api/sessions/%s", c.baseURL, c.sessionID)
	resp, err := c.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("get session failed: %s - %s", resp.Status, string(body))
	}

	var session SessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("parse session: %w", err)
	}

	c.config = session.GameConfig
	return session.GameState, nil
}

func (c *Client) Place(slotIndex int) (*GameState, error) {
	body, err := json.Marshal(PlaceRequest{SlotIndex: slotIndex})
	if err != nil {
		return nil, fmt.Errorf("marshal place: %w", err)
	}

	url := fmt.Sprintf("%s/api/sessions/%s/place", c.baseURL, c.sessionID)
	resp, err := c.client.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("execute place: %w", err)
	}
	defer resp.Body.Close()

	var placeResp PlaceResponse
	if err := json.NewDecoder(resp.Body).Decode(&placeResp); err != nil {
		return nil, fmt.Errorf("parse place response: %w", err)
	}

	if !placeResp.Success {
		return placeResp.GameState, fmt.Errorf("place failed: %s", placeResp.Message)
	}

	return placeResp.GameState, nil
}

func (c *Client) Reset() (*GameState, error) {
	url := fmt.Sprintf("%s/api/sessions/%s/reset", c.baseURL, c.sessionID)
	resp, err := c.client.Post(url, "application/json", nil)
	if err != nil {
		return nil, fmt.Errorf("reset: %w", err)
	}
	defer resp.Body.Close()

	var resetResp ResetResponse
	if err := json.NewDecoder(resp.Body).Decode(&resetResp); err != nil {
		return nil, fmt.Errorf("parse reset response: %w", err)
	}

	return resetResp.State, nil
}

func main() {
	serverURL := flag.String("url", "http://localhost:8080", "Game server URL")
	configID := flag.String("config", "", "Game configuration (classic, compact, marathon)")
	continueSession := flag.String("continue", "", "Resume playing an existing session by ID")
	maxAttempts := flag.Int("max-attempts", 100, "Maximum games before giving up")
	verbose := flag.Bool("v", false, "Verbose output")
	delayMs := flag.Int("delay", 0, "Delay between placements in milliseconds (0 = no delay)")
	flag.Parse()

	log.Printf("Connecting to game server at %s", *serverURL)
	client := NewClient(*serverURL)

	var state *GameState
	var err error

	sessionFile := ".session"
	savedSessionID := ""

	if *continueSession != "" {
		savedSessionID = *continueSession
	} else {
		if data, err := os.ReadFile(sessionFile); err == nil {
			savedSessionID = string(bytes.TrimSpace(data))
		}
	}

	if savedSessionID != "" {
		client.sessionID = savedSessionID
		log.Printf("🔄 Resuming session: %s", client.sessionID)
		state, err = client.GetSession()
		if err != nil {
			log.Printf("⚠️  Failed to resume session (may be expired): %v", err)
			log.Printf("Creating new session...")
			savedSessionID = ""
		} else {
			log.Printf("Session resumed - Board: %dx%d, Values: %d-%d",
				state.Rows, state.Columns, client.config.MinValue, client.config.MaxValue)
		}
	}

	if savedSessionID == "" {
		state, err = client.CreateSession(*configID)
		if err != nil {
			log.Fatalf("Failed to create session: %v", err)
		}
		log.Printf("✨ Session created: %s", client.sessionID)
		log.Printf("Board: %dx%d (%d slots), Values: %d-%d",
			state.Rows, state.Columns, len(state.Slots),
			client.config.MinValue, client.config.MaxValue)

		if err := os.WriteFile(sessionFile, []byte(client.sessionID), 0644); err != nil {
			log.Printf("Warning: Failed to save session ID: %v", err)
		}
	}

	log.Printf("🔄 Resetting game state...")
	state, err = client.Reset()
	if err != nil {
		log.Fatalf("Failed to reset game: %v", err)
	}

	strategy := NewProportionalStrategy(client.config.MinValue, client.config.MaxValue, len(state.Slots))

	attemptNum := 0
	for attemptNum < *maxAttempts {
		attemptNum++

		if attemptNum > 1 {
			state, err = client.Reset()
			if err != nil {
				log.Printf("Failed to reset: %v", err)
				break
			}
		}

		log.Printf("\n=== 🎮 Attempt %d/%d ===", attemptNum, *maxAttempts)

		for !state.Victory && !state.GameOver {
			slot := strategy.NextSlot(state)
			if slot < 0 {
				log.Printf("⚠️  No valid slot for value %d", state.CurrentValue)
				break
			}

			if *verbose {
				log.Printf("Value %d → slot %d (placed %d/%d)",
					state.CurrentValue, slot, state.PlacedCount, len(state.Slots))
			}

			newState, err := client.Place(slot)
			if err != nil {
				if newState != nil {
					state = newState
					if state.GameOver {
						break
					}
					continue
				}
				log.Printf("Place failed: %v", err)
				break
			}
			state = newState

			if *delayMs > 0 {
				time.Sleep(time.Duration(*delayMs) * time.Millisecond)
			}
		}

		log.Printf("Attempt %d: Placed=%d/%d, %s",
			attemptNum, state.PlacedCount, len(state.Slots), state.Message)

		if state.Victory {
			log.Printf("\n🎉 VICTORY! Game won in attempt %d with %d placements!", attemptNum, state.PlacedCount)
			log.Printf("Session: %s", client.sessionID)
			os.Exit(0)
		}
	}

	log.Printf("\n❌ Failed to win after %d attempts", attemptNum)
	log.Printf("Session: %s", client.sessionID)
	os.Exit(1)
}
