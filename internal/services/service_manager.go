package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/UCAS-CE/cyberhub-service/internal/config"
	"github.com/UCAS-CE/cyberhub-service/internal/events"
	"github.com/UCAS-CE/cyberhub-service/internal/store"
	"github.com/UCAS-CE/cyberhub-service/internal/validator"
)

// ServiceManagerConfig holds configuration for the service manager
type ServiceManagerConfig struct {
	EnableDebugLogging bool
	LogLevel           slog.Level

	// AssistantEnabled gates the generative assistant; with no API key
	// the rest of the hub still runs.
	AssistantEnabled bool

	DefaultTimeout time.Duration
}

// serviceManager implements ServiceManager interface
type serviceManager struct {
	// Dependencies
	store          *store.Store
	eventPublisher events.EventPublisher
	logger         *slog.Logger
	validator      *validator.Validator
	appConfig      *config.Config
	config         ServiceManagerConfig

	// Service instances
	authService         AuthService
	forumService        ForumService
	libraryService      LibraryService
	coordinationService CoordinationService
	challengeService    ChallengeService
	moderationService   ModerationService
	directoryService    DirectoryService
	roadmapService      RoadmapService
	assistantService    AssistantService
	notificationService NotificationEventService

	// Lifecycle management
	initialized bool
	shutdown    bool
	mu          sync.RWMutex
}

// NewServiceManager creates a new service manager with all dependencies
func NewServiceManager(st *store.Store, publisher events.EventPublisher, logger *slog.Logger, v *validator.Validator, appConfig *config.Config, cfg ServiceManagerConfig) ServiceManager {
	return &serviceManager{
		store:          st,
		eventPublisher: publisher,
		logger:         logger,
		validator:      v,
		appConfig:      appConfig,
		config:         cfg,
	}
}

// NewDefaultServiceManager creates a service manager with default configuration
func NewDefaultServiceManager(st *store.Store, publisher events.EventPublisher, logger *slog.Logger, v *validator.Validator, appConfig *config.Config) ServiceManager {
	cfg := ServiceManagerConfig{
		EnableDebugLogging: appConfig.Environment != "production",
		LogLevel:           slog.LevelInfo,
		AssistantEnabled:   appConfig.Gemini.APIKey != "",
		DefaultTimeout:     30 * time.Second,
	}

	return NewServiceManager(st, publisher, logger, v, appConfig, cfg)
}

// Initialize sets up all services and their dependencies
func (sm *serviceManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	sm.logger.Info("Initializing service manager")

	if err := sm.initializeServices(ctx); err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	sm.initialized = true
	sm.logger.Info("Service manager initialized successfully")

	return nil
}

func (sm *serviceManager) initializeServices(ctx context.Context) error {
	// Notification first; moderation depends on it.
	sm.notificationService = NewNotificationEventService(sm.eventPublisher, sm.logger, sm.validator)
	sm.logger.Info("Notification service initialized")

	sm.authService = NewAuthService(sm.store, sm.eventPublisher, sm.logger, sm.validator, sm.appConfig.Auth)
	sm.logger.Info("Auth service initialized")

	sm.forumService = NewForumService(sm.store, sm.logger, sm.validator)
	sm.logger.Info("Forum service initialized")

	sm.libraryService = NewLibraryService(sm.store, sm.logger, sm.validator)
	sm.logger.Info("Library service initialized")

	sm.coordinationService = NewCoordinationService(sm.store, sm.logger, sm.validator)
	sm.logger.Info("Coordination service initialized")

	sm.challengeService = NewChallengeService(sm.store, sm.logger, sm.validator)
	sm.logger.Info("Challenge service initialized")

	sm.moderationService = NewModerationService(sm.store, sm.eventPublisher, sm.notificationService, sm.logger, sm.validator)
	sm.logger.Info("Moderation service initialized")

	sm.directoryService = NewDirectoryService(sm.store, sm.logger)
	sm.logger.Info("Directory service initialized")

	sm.roadmapService = NewRoadmapService(sm.store, sm.logger)
	sm.logger.Info("Roadmap service initialized")

	var client generativeClient
	if sm.config.AssistantEnabled {
		c, err := newGeminiClient(ctx, sm.appConfig.Gemini)
		if err != nil {
			return fmt.Errorf("failed to initialize generative client: %w", err)
		}
		client = c
	} else {
		sm.logger.Warn("Assistant running without generative backend; replies will be unavailable")
		client = disabledGenerativeClient{}
	}
	sm.assistantService = NewAssistantService(sm.store, client, sm.logger, sm.validator)
	sm.logger.Info("Assistant service initialized", "enabled", sm.config.AssistantEnabled)

	return nil
}

// disabledGenerativeClient stands in when no API key is configured.
type disabledGenerativeClient struct{}

func (disabledGenerativeClient) GenerateText(ctx context.Context, turns []ChatTurn, message string, useSearch bool) (string, []SourceRef, error) {
	return "", nil, errors.New("generative backend not configured")
}

func (disabledGenerativeClient) GenerateLearningPath(ctx context.Context, goal string) (*LearningPath, error) {
	return nil, errors.New("generative backend not configured")
}

// Service getters
func (sm *serviceManager) Auth() AuthService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}

	return sm.authService
}

func (sm *serviceManager) Forum() ForumService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}

	return sm.forumService
}

func (sm *serviceManager) Library() LibraryService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}

	return sm.libraryService
}

func (sm *serviceManager) Coordination() CoordinationService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}

	return sm.coordinationService
}

func (sm *serviceManager) Challenge() ChallengeService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}

	return sm.challengeService
}

func (sm *serviceManager) Moderation() ModerationService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}

	return sm.moderationService
}

func (sm *serviceManager) Directory() DirectoryService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}

	return sm.directoryService
}

func (sm *serviceManager) Roadmap() RoadmapService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}

	return sm.roadmapService
}

func (sm *serviceManager) Assistant() AssistantService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}

	return sm.assistantService
}

func (sm *serviceManager) Notification() NotificationEventService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}

	return sm.notificationService
}

// Health and lifecycle
func (sm *serviceManager) HealthCheck(ctx context.Context) error {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		return fmt.Errorf("service manager not initialized")
	}

	if sm.shutdown {
		return fmt.Errorf("service manager is shut down")
	}

	// The snapshot backend is optional; running without one is degraded
	// but healthy.
	if err := sm.store.Ping(ctx); err != nil && !errors.Is(err, store.ErrSnapshotNotAvailable) {
		return fmt.Errorf("store health check failed: %w", err)
	}

	return nil
}

func (sm *serviceManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.shutdown {
		return nil
	}

	sm.logger.Info("Shutting down service manager")

	if err := sm.eventPublisher.Close(); err != nil {
		sm.logger.Error("Failed to close event publisher", "error", err)
	}

	sm.shutdown = true
	sm.logger.Info("Service manager shut down completed")

	return nil
}

// IsInitialized returns whether the service manager has been initialized
func (sm *serviceManager) IsInitialized() bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.initialized
}
