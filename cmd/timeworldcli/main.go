// Command timeworldcli is a terminal client for the timeworld service: a
// world clock over the city catalogue with favorites, weather and display
// settings.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/aussiebroadwan/timeworld/internal/client/clock"
	"github.com/aussiebroadwan/timeworld/internal/client/config"
	"github.com/aussiebroadwan/timeworld/internal/client/refresh"
	"github.com/aussiebroadwan/timeworld/internal/client/state"
	"github.com/aussiebroadwan/timeworld/pkg/worldsdk"
)

const usage = `usage: timeworldcli <command> [args]

  register <phone> <first> <last>  create an account and sign in
  login <phone>                    sign in with a registered phone
  logout                           revoke the session and clear the token
  yandex-url                       print the Yandex OAuth login URL
  yandex <code>                    complete the Yandex OAuth code flow
  profile                          show the signed-in user
  list                             list cities with their current time
  search <query>                   search cities by city or country name
  country <name>                   list a country's cities
  favorite <city-id>               toggle a city's favorite flag
  favorites                        list favorite cities
  weather [city]                   show the weather report
  settings                         show display settings
  set <field> <value>              change one setting (theme, weather_city,
                                   timezone_mode, notifications_enabled)
  watch                            live clock table, refreshed every second
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.Load()
	client := worldsdk.NewClient(cfg.ServerURL)

	tokens, err := state.NewFileTokenStore(cfg.ConfigDir)
	if err != nil {
		fatal(err)
	}

	manager := state.NewManager(client, tokens, func(op string, err error) {
		fmt.Fprintf(os.Stderr, "warning: %s failed: %v\n", op, err)
	})

	ctx := context.Background()
	if err := run(ctx, cfg, client, manager, os.Args[1], os.Args[2:]); err != nil {
		fatal(err)
	}
}

func run(ctx context.Context, cfg config.Config, client *worldsdk.Client, manager *state.Manager, cmd string, args []string) error {
	switch cmd {
	case "register":
		if len(args) != 3 {
			return errors.New("register needs <phone> <first> <last>")
		}
		if err := manager.Register(ctx, args[0], args[1], args[2]); err != nil {
			return err
		}
		fmt.Println("registered and signed in")
		return nil

	case "login":
		if len(args) != 1 {
			return errors.New("login needs <phone>")
		}
		if err := manager.Login(ctx, args[0]); err != nil {
			if isAPIError(err, worldsdk.ErrorCodeUserNotFound) {
				return errors.New("phone not registered; run register first")
			}
			return err
		}
		fmt.Println("signed in")
		return nil

	case "logout":
		manager.Logout(ctx)
		fmt.Println("signed out")
		return nil

	case "yandex-url":
		fmt.Println(client.YandexAuthURL(cfg.YandexClientID, ""))
		return nil

	case "yandex":
		if len(args) != 1 {
			return errors.New("yandex needs <code>")
		}
		resp, err := client.YandexCallback(ctx, args[0])
		if err != nil {
			return err
		}
		if err := manager.AdoptToken(ctx, resp.Token); err != nil {
			return err
		}
		fmt.Println("signed in via yandex")
		return nil

	case "profile":
		if err := requireAuth(ctx, manager); err != nil {
			return err
		}
		u := manager.User()
		fmt.Printf("%s %s\nphone: %s\n", u.FirstName, u.LastName, u.Phone)
		if u.YandexID != nil {
			fmt.Printf("yandex: %s\n", *u.YandexID)
		}
		return nil

	case "list":
		_, _ = manager.Startup(ctx)
		cities, err := client.Cities(ctx)
		if err != nil {
			return err
		}
		printCities(cities, manager)
		return nil

	case "search":
		if len(args) != 1 {
			return errors.New("search needs <query>")
		}
		_, _ = manager.Startup(ctx)
		cities, err := manager.Search(ctx, args[0])
		if err != nil {
			return err
		}
		printCities(cities, manager)
		return nil

	case "country":
		if len(args) != 1 {
			return errors.New("country needs <name>")
		}
		_, _ = manager.Startup(ctx)
		cities, err := client.CitiesByCountry(ctx, args[0])
		if err != nil {
			return err
		}
		printCities(cities, manager)
		return nil

	case "favorite":
		if len(args) != 1 {
			return errors.New("favorite needs <city-id>")
		}
		cityID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return errors.New("city id must be numeric")
		}
		if err := requireAuth(ctx, manager); err != nil {
			return err
		}
		favorite, err := manager.ToggleFavorite(ctx, cityID)
		if err != nil {
			return err
		}
		if favorite {
			fmt.Println("added to favorites")
		} else {
			fmt.Println("removed from favorites")
		}
		return nil

	case "favorites":
		if err := requireAuth(ctx, manager); err != nil {
			return err
		}
		cities, err := manager.Session().Favorites(ctx)
		if err != nil {
			return err
		}
		printCities(cities, manager)
		return nil

	case "weather":
		_, _ = manager.Startup(ctx)
		city := manager.Settings().WeatherCity
		if len(args) == 1 {
			city = args[0]
		}
		w, err := client.Weather(ctx, city)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %s, %s (%s)\n", city, w.Temp, w.Condition, w.Description)
		return nil

	case "settings":
		if err := requireAuth(ctx, manager); err != nil {
			return err
		}
		s := manager.Settings()
		fmt.Printf("theme: %s\nweather_city: %s\ntimezone_mode: %s\nnotifications_enabled: %t\n",
			s.Theme, s.WeatherCity, s.TimezoneMode, s.NotificationsEnabled)
		return nil

	case "set":
		if len(args) != 2 {
			return errors.New("set needs <field> <value>")
		}
		if err := requireAuth(ctx, manager); err != nil {
			return err
		}
		patch, err := settingsPatch(args[0], args[1])
		if err != nil {
			return err
		}
		manager.UpdateSettings(ctx, patch)
		fmt.Println("updated")
		return nil

	case "watch":
		_, _ = manager.Startup(ctx)
		return watch(ctx, client, manager)

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// requireAuth restores the session and fails with a sign-in hint when no
// live session exists.
func requireAuth(ctx context.Context, manager *state.Manager) error {
	status, _ := manager.Startup(ctx)
	if status != state.Authenticated {
		return errors.New("not signed in; run login or register first")
	}
	return nil
}

func settingsPatch(field, value string) (worldsdk.SettingsUpdateRequest, error) {
	var patch worldsdk.SettingsUpdateRequest
	switch field {
	case "theme":
		patch.Theme = &value
	case "weather_city":
		patch.WeatherCity = &value
	case "timezone_mode":
		patch.TimezoneMode = &value
	case "notifications_enabled":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return patch, errors.New("notifications_enabled must be true or false")
		}
		patch.NotificationsEnabled = &enabled
	default:
		return patch, fmt.Errorf("unknown setting %q", field)
	}
	return patch, nil
}

func printCities(cities []worldsdk.City, manager *state.Manager) {
	now := time.Now()
	mode := manager.Settings().TimezoneMode
	for _, c := range cities {
		marker := " "
		if manager.IsFavorite(c.ID) {
			marker = "*"
		}
		fmt.Printf("%s %4d  %-20s %-20s %s\n",
			marker, c.ID, c.Name, c.Country, clock.Display(c.Timezone, now, mode))
	}
}

// watch runs the refresh loop and redraws the clock table every second
// until interrupted.
func watch(ctx context.Context, client *worldsdk.Client, manager *state.Manager) error {
	cities, err := client.Cities(ctx)
	if err != nil {
		return err
	}

	entries := make([]refresh.Entry, 0, len(cities))
	for _, c := range cities {
		entries = append(entries, refresh.Entry{ID: c.ID, Timezone: c.Timezone})
	}

	loop := refresh.NewLoop(1 * time.Second)
	loop.Start(entries)
	defer loop.Stop()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		times := loop.Times()
		fmt.Print("\033[H\033[2J") // clear screen
		for _, c := range cities {
			marker := " "
			if manager.IsFavorite(c.ID) {
				marker = "*"
			}
			fmt.Printf("%s %-20s %-20s %s\n", marker, c.Name, c.Country, times[c.ID])
		}
		fmt.Println(strings.Repeat("-", 52))
		fmt.Println("ctrl-c to exit")

		select {
		case <-ticker.C:
		case <-stop:
			return nil
		}
	}
}

func isAPIError(err error, code string) bool {
	var apiErr *worldsdk.APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
