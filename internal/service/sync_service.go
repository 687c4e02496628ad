package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kentgarcia/EnviroTrace-sub011/internal/model"
	"github.com/kentgarcia/EnviroTrace-sub011/internal/repository"
	"github.com/kentgarcia/EnviroTrace-sub011/internal/utils"
)

// PendingIDPrefix marks vehicles created offline: the client assigns
// "pending-<ts>" ids until the sync hands back a server UUID.
const PendingIDPrefix = "pending-"

// SyncService reconciles the client's offline pending-change queue. Deletes
// are processed first, then creates, then updates, each entry awaited before
// the next within its category. Entries fail independently: a rejected item
// never blocks its siblings, and the client keeps rejected entries queued for
// the next online transition.
type SyncService struct {
	vehicleRepo    *repository.VehicleRepository
	vehicleService *VehicleService
	log            zerolog.Logger
}

func NewSyncService(vehicleRepo *repository.VehicleRepository, vehicleService *VehicleService, log zerolog.Logger) *SyncService {
	return &SyncService{
		vehicleRepo:    vehicleRepo,
		vehicleService: vehicleService,
		log:            log,
	}
}

type PendingCreate struct {
	// ClientID is the pending-* id the client displays until sync.
	ClientID string       `json:"client_id"`
	Input    VehicleInput `json:"input"`
}

type PendingUpdate struct {
	ID     string              `json:"id"`
	Update model.VehicleUpdate `json:"update"`
}

type SyncPushInput struct {
	Deletes []string        `json:"deletes"`
	Creates []PendingCreate `json:"creates"`
	Updates []PendingUpdate `json:"updates"`
}

type SyncItemResult struct {
	ClientID string     `json:"client_id"`
	ServerID *uuid.UUID `json:"server_id,omitempty"`
	Error    string     `json:"error,omitempty"`
}

type SyncPushResult struct {
	Accepted    int              `json:"accepted"`
	Rejected    int              `json:"rejected"`
	Deleted     []SyncItemResult `json:"deleted"`
	Created     []SyncItemResult `json:"created"`
	Updated     []SyncItemResult `json:"updated"`
	RejectedIDs []string         `json:"rejected_ids,omitempty"`
}

func (s *SyncService) Push(ctx context.Context, principal model.Principal, input SyncPushInput) (*SyncPushResult, error) {
	if !principal.HasCapability(model.CapEmissionWrite) {
		return nil, ErrPermissionDenied
	}

	result := &SyncPushResult{}

	for _, id := range input.Deletes {
		item := SyncItemResult{ClientID: id}
		if strings.HasPrefix(id, PendingIDPrefix) {
			// The vehicle never reached the server; deleting it is a no-op.
			result.Accepted++
		} else if err := s.deleteOne(ctx, principal, id); err != nil {
			item.Error = err.Error()
			s.rejectItem(result, &item, "delete")
		} else {
			result.Accepted++
		}
		result.Deleted = append(result.Deleted, item)
	}

	for _, create := range input.Creates {
		item := SyncItemResult{ClientID: create.ClientID}
		vehicle, err := s.vehicleService.Create(ctx, principal, create.Input)
		if err != nil {
			item.Error = err.Error()
			s.rejectItem(result, &item, "create")
		} else {
			serverID := vehicle.ID
			item.ServerID = &serverID
			result.Accepted++
		}
		result.Created = append(result.Created, item)
	}

	for _, update := range input.Updates {
		item := SyncItemResult{ClientID: update.ID}
		vehicle, err := s.updateOne(ctx, principal, update)
		if err != nil {
			item.Error = err.Error()
			s.rejectItem(result, &item, "update")
		} else {
			serverID := vehicle.ID
			item.ServerID = &serverID
			result.Accepted++
		}
		result.Updated = append(result.Updated, item)
	}

	return result, nil
}

func (s *SyncService) deleteOne(ctx context.Context, principal model.Principal, id string) error {
	err := s.vehicleService.Delete(ctx, principal, id)
	if errors.Is(err, ErrNotFound) {
		// Already gone server-side; treat the queued delete as settled.
		return nil
	}
	return err
}

func (s *SyncService) updateOne(ctx context.Context, principal model.Principal, update PendingUpdate) (*model.Vehicle, error) {
	id := update.ID
	if strings.HasPrefix(id, PendingIDPrefix) {
		// The create in this same push may have landed already; resolve the
		// pending id through the plate number if the update carries one.
		plate, ok := pendingLookupPlate(update.Update)
		if !ok {
			return nil, ErrNotFound
		}
		existing, err := s.vehicleRepo.GetByPlate(ctx, plate)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, ErrNotFound
		}
		id = existing.ID.String()
	}
	return s.vehicleService.Update(ctx, principal, id, update.Update)
}

// pendingLookupPlate extracts the plate a queued update can be resolved by.
// Stored rows carry canonicalized plates, so the raw value is normalized
// before the lookup.
func pendingLookupPlate(update model.VehicleUpdate) (string, bool) {
	if update.PlateNumber == nil {
		return "", false
	}
	plate := utils.NormalizePlate(*update.PlateNumber)
	if plate == "" {
		return "", false
	}
	return plate, true
}

func (s *SyncService) rejectItem(result *SyncPushResult, item *SyncItemResult, kind string) {
	result.Rejected++
	result.RejectedIDs = append(result.RejectedIDs, item.ClientID)
	s.log.Warn().
		Str("kind", kind).
		Str("client_id", item.ClientID).
		Str("error", item.Error).
		Msg("sync item rejected")
}

// Preview renders the vehicle list as the client will see it once its queue
// lands, without persisting anything. The grid shows this merged view while
// the device is still offline or the push is in flight.
func (s *SyncService) Preview(ctx context.Context, principal model.Principal, input SyncPushInput) ([]model.Vehicle, error) {
	if !principal.HasCapability(model.CapEmissionRead) {
		return nil, ErrPermissionDenied
	}

	server, err := s.vehicleRepo.List(ctx, repository.VehicleListFilter{})
	if err != nil {
		return nil, err
	}

	creates := make([]PendingVehicle, 0, len(input.Creates))
	for _, create := range input.Creates {
		creates = append(creates, pendingFromCreate(create))
	}

	updates := make(map[string]model.VehicleUpdate, len(input.Updates))
	for _, update := range input.Updates {
		updates[update.ID] = update.Update
	}

	deletes := make(map[string]struct{}, len(input.Deletes))
	for _, id := range input.Deletes {
		deletes[id] = struct{}{}
	}

	return MergeVehicleView(server, creates, updates, deletes), nil
}

// PendingVehicle is a not-yet-persisted create carried under its client id.
type PendingVehicle struct {
	ClientID string
	Vehicle  model.Vehicle
}

// pendingFromCreate shapes a queued create the way the persisted row would
// look, so the merged preview matches what the push will produce.
func pendingFromCreate(create PendingCreate) PendingVehicle {
	in := create.Input
	return PendingVehicle{
		ClientID: create.ClientID,
		Vehicle: model.Vehicle{
			PlateNumber:        utils.NormalizePlate(in.PlateNumber),
			ChassisNumber:      in.ChassisNumber,
			RegistrationNumber: in.RegistrationNumber,
			DriverName:         in.DriverName,
			OfficeName:         in.OfficeName,
			VehicleType:        in.VehicleType,
			EngineType:         model.EngineType(in.EngineType),
			Wheels:             in.Wheels,
			ContactNumber:      in.ContactNumber,
			Remarks:            in.Remarks,
		},
	}
}

// MergeVehicleView overlays a pending-change queue onto a server vehicle
// list the same way the offline client renders it: server order preserved,
// pending creates appended at the end, pending updates overlaid field by
// field, pending deletes filtered out.
func MergeVehicleView(
	server []model.Vehicle,
	creates []PendingVehicle,
	updates map[string]model.VehicleUpdate,
	deletes map[string]struct{},
) []model.Vehicle {
	merged := make([]model.Vehicle, 0, len(server)+len(creates))

	for _, vehicle := range server {
		id := vehicle.ID.String()
		if _, deleted := deletes[id]; deleted {
			continue
		}
		if update, ok := updates[id]; ok {
			update.Apply(&vehicle)
		}
		merged = append(merged, vehicle)
	}

	for _, pending := range creates {
		if _, deleted := deletes[pending.ClientID]; deleted {
			continue
		}
		vehicle := pending.Vehicle
		if update, ok := updates[pending.ClientID]; ok {
			update.Apply(&vehicle)
		}
		merged = append(merged, vehicle)
	}

	return merged
}
