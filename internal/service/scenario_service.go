package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/immocalc/Immo-Calculator-Backend/internal/model"
	"github.com/immocalc/Immo-Calculator-Backend/internal/repository"
)

// ScenarioService handles scenario-related business logic: creating, reading,
// updating and deleting stored input sets and their rent-increase lists.
type ScenarioService struct {
	scenarioRepo *repository.ScenarioRepository
}

// NewScenarioService creates a new ScenarioService with the provided repository.
func NewScenarioService(scenarioRepo *repository.ScenarioRepository) *ScenarioService {
	return &ScenarioService{
		scenarioRepo: scenarioRepo,
	}
}

// GetAllScenarios retrieves all stored scenarios.
func (s *ScenarioService) GetAllScenarios() ([]model.Scenario, error) {
	return s.scenarioRepo.GetScenarios()
}

// GetScenario retrieves one scenario by ID.
func (s *ScenarioService) GetScenario(id string) (model.Scenario, error) {
	return s.scenarioRepo.GetScenario(id)
}

// CreateScenario stores a new scenario, assigning its ID and timestamps.
func (s *ScenarioService) CreateScenario(scenario model.Scenario) (model.Scenario, error) {
	now := time.Now().UTC()
	scenario.ID = uuid.New().String()
	scenario.CreatedAt = now
	scenario.UpdatedAt = now

	if err := s.scenarioRepo.CreateScenario(scenario); err != nil {
		return model.Scenario{}, err
	}
	return scenario, nil
}

// UpdateScenario applies the given mutation to a stored scenario and persists
// the result. The mutation receives the current stored state; returning an
// error aborts the update without persisting anything, which is where callers
// reject merged states that violate cross-field constraints.
func (s *ScenarioService) UpdateScenario(id string, mutate func(*model.Scenario) error) (model.Scenario, error) {
	scenario, err := s.scenarioRepo.GetScenario(id)
	if err != nil {
		return model.Scenario{}, err
	}

	if err := mutate(&scenario); err != nil {
		return model.Scenario{}, err
	}
	scenario.ID = id
	scenario.UpdatedAt = time.Now().UTC()

	if err := s.scenarioRepo.UpdateScenario(scenario); err != nil {
		return model.Scenario{}, err
	}
	return scenario, nil
}

// DeleteScenario removes a scenario and its rent increases.
func (s *ScenarioService) DeleteScenario(id string) error {
	return s.scenarioRepo.DeleteScenario(id)
}

// AddRentIncrease appends one rent increase to a scenario and returns the
// updated scenario.
func (s *ScenarioService) AddRentIncrease(id string, increase model.RentIncrease) (model.Scenario, error) {
	if err := s.scenarioRepo.AddRentIncrease(id, increase); err != nil {
		return model.Scenario{}, err
	}
	return s.scenarioRepo.GetScenario(id)
}

// ClearRentIncreases removes all rent increases from a scenario.
func (s *ScenarioService) ClearRentIncreases(id string) error {
	return s.scenarioRepo.ClearRentIncreases(id)
}
