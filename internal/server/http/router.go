package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/timeworld/internal/server/service"
	"github.com/aussiebroadwan/timeworld/internal/server/store"
	"github.com/aussiebroadwan/timeworld/pkg/httpx"
	"github.com/aussiebroadwan/timeworld/pkg/jwtx"
	"github.com/aussiebroadwan/timeworld/pkg/slogx"

	_ "github.com/aussiebroadwan/timeworld/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store           store.Store
	TokenService    *service.TokenService
	AuthService     *service.AuthService
	CityService     *service.CityService
	SettingsService *service.SettingsService
	WeatherService  *service.WeatherService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerCities()
	r.registerWeather()
	r.registerSettings()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			TimeWorld Service API
//	@version		0.1.0
//	@description	World clock and weather service: phone-presence auth with Yandex OAuth,
//	@description	a seeded city catalogue (including the parallel-world entry), per-user
//	@description	favorites and display settings, and an OpenWeatherMap weather proxy.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/timeworld
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) authn() httpx.Middleware {
	return httpx.AuthnMiddleware(r.verifier, r.TokenService)
}

func (r *Router) registerAuth() {
	registerHandler := &RegisterHandler{AuthService: r.AuthService}
	loginHandler := &LoginHandler{AuthService: r.AuthService}
	yandexHandler := &YandexCallbackHandler{AuthService: r.AuthService}
	logoutHandler := &LogoutHandler{TokenService: r.TokenService}
	profileHandler := &ProfileHandler{AuthService: r.AuthService}

	// Credential-minting endpoints get the strict limit by IP
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/yandex/callback",
		httpx.Chain(yandexHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("POST /v1/auth/logout",
		httpx.Chain(logoutHandler,
			r.authn(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /v1/profile",
		httpx.Chain(http.HandlerFunc(profileHandler.HandleGet),
			r.authn(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("PUT /v1/profile",
		httpx.Chain(http.HandlerFunc(profileHandler.HandlePut),
			r.authn(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerCities() {
	citiesHandler := &CitiesHandler{CityService: r.CityService}
	favoritesHandler := &FavoritesHandler{CityService: r.CityService}

	// Public catalogue; the client polls it freely
	r.Mux.Handle("GET /v1/cities",
		httpx.Chain(citiesHandler,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("POST /v1/cities/favorite",
		httpx.Chain(http.HandlerFunc(favoritesHandler.HandleAdd),
			r.authn(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/cities/favorite/{id}",
		httpx.Chain(http.HandlerFunc(favoritesHandler.HandleRemove),
			r.authn(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/cities/favorites",
		httpx.Chain(http.HandlerFunc(favoritesHandler.HandleList),
			r.authn(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerWeather() {
	h := &WeatherHandler{WeatherService: r.WeatherService}

	r.Mux.Handle("GET /v1/weather",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSettings() {
	h := &SettingsHandler{SettingsService: r.SettingsService}

	r.Mux.Handle("GET /v1/settings",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			r.authn(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("PUT /v1/settings",
		httpx.Chain(http.HandlerFunc(h.HandlePut),
			r.authn(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
