package gameserver

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cory-johannsen/grindstone/internal/game/action"
	"github.com/cory-johannsen/grindstone/internal/game/engine"
	"github.com/cory-johannsen/grindstone/internal/game/gameerr"
	"github.com/cory-johannsen/grindstone/internal/game/inventory"
	"github.com/cory-johannsen/grindstone/internal/game/progression"
	"github.com/cory-johannsen/grindstone/internal/game/regen"
	"github.com/cory-johannsen/grindstone/internal/game/stats"
	"github.com/cory-johannsen/grindstone/internal/gameserver/enginev1"
)

// Engine is the set of engine operations served over gRPC.
type Engine interface {
	StartAction(ctx context.Context, playerID int64, actionID string, opts action.Options) (*action.View, error)
	StopAction(ctx context.Context, playerID int64) (action.StopResult, error)
	GetActiveAction(ctx context.Context, playerID int64) (*action.View, error)
	GetJobProgression(ctx context.Context, playerID int64) (progression.Progress, error)
	GetSkillProgression(ctx context.Context, playerID int64, skillID string) (progression.Progress, error)
	GetStats(ctx context.Context, playerID int64) (stats.AggregatedStats, error)
	GetPoolState(ctx context.Context, playerID int64) (regen.PoolState, error)
	SetBattleState(ctx context.Context, playerID int64, inBattle bool) (regen.PoolState, error)
	ApplyPoolDelta(ctx context.Context, playerID int64, hpDelta, spDelta int) (regen.PoolState, error)
	ResolveSkillUse(ctx context.Context, playerID int64, skillID string, targets []engine.TargetSpec) (engine.SkillUse, error)
	GetStatuses(ctx context.Context, playerID int64) (engine.StatusView, error)
	EndTurn(ctx context.Context, playerID int64) (engine.TurnResult, error)
	Equip(ctx context.Context, playerID int64, itemID string) (engine.EquipResult, error)
	Unequip(ctx context.Context, playerID int64, slot inventory.Slot) (engine.EquipResult, error)
}

// EngineServer adapts an Engine to enginev1.EngineServiceServer, translating
// rejections into gRPC status codes.
type EngineServer struct {
	enginev1.UnimplementedEngineServiceServer
	engine Engine
	logger *zap.Logger
}

// NewEngineServer creates an EngineServer.
//
// Precondition: eng and logger must be non-nil.
func NewEngineServer(eng Engine, logger *zap.Logger) *EngineServer {
	return &EngineServer{engine: eng, logger: logger}
}

// Register attaches s to srv.
func (s *EngineServer) Register(srv grpc.ServiceRegistrar) {
	enginev1.RegisterEngineServiceServer(srv, s)
}

func checkPlayer(id int64) error {
	if id <= 0 {
		return status.Errorf(codes.InvalidArgument, "player_id must be > 0, got %d", id)
	}
	return nil
}

// toStatus maps engine errors to gRPC status errors. Rejections keep their
// reason; anything else is logged and reported as Internal.
func (s *EngineServer) toStatus(method string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	if errors.Is(err, context.Canceled) {
		return status.Error(codes.Canceled, err.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	code := gameerr.CodeOf(err)
	switch code {
	case gameerr.AlreadyRunning, gameerr.NoActiveAction, gameerr.LevelTooLow,
		gameerr.MissingInputs, gameerr.InsufficientStamina, gameerr.Incapacitated:
		return status.Error(codes.FailedPrecondition, err.Error())
	case gameerr.UnknownEntity:
		return status.Error(codes.NotFound, err.Error())
	case gameerr.InvalidSkillDefinition, gameerr.InvalidTarget:
		return status.Error(codes.InvalidArgument, err.Error())
	}
	s.logger.Error("engine call failed", zap.String("method", method), zap.Error(err))
	return status.Error(codes.Internal, "internal error")
}


// StartAction implements enginev1.EngineServiceServer.
func (s *EngineServer) StartAction(ctx context.Context, req *enginev1.StartActionRequest) (*enginev1.ActionResponse, error) {
	if err := checkPlayer(req.GetPlayerId()); err != nil {
		return nil, err
	}
	if req.GetActionId() == "" {
		return nil, status.Error(codes.InvalidArgument, "action_id must not be empty")
	}
	if req.GetMaxAttempts() < 0 {
		return nil, status.Errorf(codes.InvalidArgument, "max_attempts must be >= 0, got %d", req.GetMaxAttempts())
	}
	opts := action.DefaultOptions()
	opts.Loop = !req.GetOnce()
	opts.MaxAttempts = int(req.GetMaxAttempts())
	v, err := s.engine.StartAction(ctx, req.GetPlayerId(), req.GetActionId(), opts)
	if err != nil {
		return nil, s.toStatus("StartAction", err)
	}
	return actionResponse(v), nil
}

// StopAction implements enginev1.EngineServiceServer.
func (s *EngineServer) StopAction(ctx context.Context, req *enginev1.PlayerRequest) (*enginev1.StopActionResponse, error) {
	if err := checkPlayer(req.GetPlayerId()); err != nil {
		return nil, err
	}
	res, err := s.engine.StopAction(ctx, req.GetPlayerId())
	if err != nil {
		return nil, s.toStatus("StopAction", err)
	}
	return stopResultProto(res), nil
}

// GetActiveAction implements enginev1.EngineServiceServer.
func (s *EngineServer) GetActiveAction(ctx context.Context, req *enginev1.PlayerRequest) (*enginev1.ActionResponse, error) {
	if err := checkPlayer(req.GetPlayerId()); err != nil {
		return nil, err
	}
	v, err := s.engine.GetActiveAction(ctx, req.GetPlayerId())
	if err != nil {
		return nil, s.toStatus("GetActiveAction", err)
	}
	return actionResponse(v), nil
}

// GetJobProgression implements enginev1.EngineServiceServer.
func (s *EngineServer) GetJobProgression(ctx context.Context, req *enginev1.PlayerRequest) (*enginev1.Progression, error) {
	if err := checkPlayer(req.GetPlayerId()); err != nil {
		return nil, err
	}
	p, err := s.engine.GetJobProgression(ctx, req.GetPlayerId())
	if err != nil {
		return nil, s.toStatus("GetJobProgression", err)
	}
	return progressionProto(p), nil
}

// GetSkillProgression implements enginev1.EngineServiceServer.
func (s *EngineServer) GetSkillProgression(ctx context.Context, req *enginev1.SkillProgressionRequest) (*enginev1.Progression, error) {
	if err := checkPlayer(req.GetPlayerId()); err != nil {
		return nil, err
	}
	p, err := s.engine.GetSkillProgression(ctx, req.GetPlayerId(), req.GetSkillId())
	if err != nil {
		return nil, s.toStatus("GetSkillProgression", err)
	}
	return progressionProto(p), nil
}

// GetStats implements enginev1.EngineServiceServer.
func (s *EngineServer) GetStats(ctx context.Context, req *enginev1.PlayerRequest) (*enginev1.Stats, error) {
	if err := checkPlayer(req.GetPlayerId()); err != nil {
		return nil, err
	}
	st, err := s.engine.GetStats(ctx, req.GetPlayerId())
	if err != nil {
		return nil, s.toStatus("GetStats", err)
	}
	return statsProto(st), nil
}

// GetPoolState implements enginev1.EngineServiceServer.
func (s *EngineServer) GetPoolState(ctx context.Context, req *enginev1.PlayerRequest) (*enginev1.PoolState, error) {
	if err := checkPlayer(req.GetPlayerId()); err != nil {
		return nil, err
	}
	p, err := s.engine.GetPoolState(ctx, req.GetPlayerId())
	if err != nil {
		return nil, s.toStatus("GetPoolState", err)
	}
	return poolStateProto(p), nil
}

// SetBattleState implements enginev1.EngineServiceServer.
func (s *EngineServer) SetBattleState(ctx context.Context, req *enginev1.SetBattleStateRequest) (*enginev1.PoolState, error) {
	if err := checkPlayer(req.GetPlayerId()); err != nil {
		return nil, err
	}
	p, err := s.engine.SetBattleState(ctx, req.GetPlayerId(), req.GetInBattle())
	if err != nil {
		return nil, s.toStatus("SetBattleState", err)
	}
	return poolStateProto(p), nil
}

// ApplyPoolDelta implements enginev1.EngineServiceServer.
func (s *EngineServer) ApplyPoolDelta(ctx context.Context, req *enginev1.ApplyPoolDeltaRequest) (*enginev1.PoolState, error) {
	if err := checkPlayer(req.GetPlayerId()); err != nil {
		return nil, err
	}
	p, err := s.engine.ApplyPoolDelta(ctx, req.GetPlayerId(), int(req.GetHpDelta()), int(req.GetSpDelta()))
	if err != nil {
		return nil, s.toStatus("ApplyPoolDelta", err)
	}
	return poolStateProto(p), nil
}

// ResolveSkillUse implements enginev1.EngineServiceServer.
func (s *EngineServer) ResolveSkillUse(ctx context.Context, req *enginev1.ResolveSkillUseRequest) (*enginev1.SkillUseResponse, error) {
	if err := checkPlayer(req.GetPlayerId()); err != nil {
		return nil, err
	}
	targets := make([]engine.TargetSpec, 0, len(req.GetTargets()))
	for _, t := range req.GetTargets() {
		targets = append(targets, targetSpecFromProto(t))
	}
	use, err := s.engine.ResolveSkillUse(ctx, req.GetPlayerId(), req.GetSkillId(), targets)
	if err != nil {
		return nil, s.toStatus("ResolveSkillUse", err)
	}
	return skillUseProto(use), nil
}

// GetStatuses implements enginev1.EngineServiceServer.
func (s *EngineServer) GetStatuses(ctx context.Context, req *enginev1.PlayerRequest) (*enginev1.StatusView, error) {
	if err := checkPlayer(req.GetPlayerId()); err != nil {
		return nil, err
	}
	v, err := s.engine.GetStatuses(ctx, req.GetPlayerId())
	if err != nil {
		return nil, s.toStatus("GetStatuses", err)
	}
	return statusViewProto(v), nil
}

// EndTurn implements enginev1.EngineServiceServer.
func (s *EngineServer) EndTurn(ctx context.Context, req *enginev1.PlayerRequest) (*enginev1.EndTurnResponse, error) {
	if err := checkPlayer(req.GetPlayerId()); err != nil {
		return nil, err
	}
	res, err := s.engine.EndTurn(ctx, req.GetPlayerId())
	if err != nil {
		return nil, s.toStatus("EndTurn", err)
	}
	return turnResultProto(res), nil
}

// Equip implements enginev1.EngineServiceServer.
func (s *EngineServer) Equip(ctx context.Context, req *enginev1.EquipRequest) (*enginev1.EquipResponse, error) {
	if err := checkPlayer(req.GetPlayerId()); err != nil {
		return nil, err
	}
	res, err := s.engine.Equip(ctx, req.GetPlayerId(), req.GetItemId())
	if err != nil {
		return nil, s.toStatus("Equip", err)
	}
	return equipResultProto(res), nil
}

// Unequip implements enginev1.EngineServiceServer.
func (s *EngineServer) Unequip(ctx context.Context, req *enginev1.UnequipRequest) (*enginev1.EquipResponse, error) {
	if err := checkPlayer(req.GetPlayerId()); err != nil {
		return nil, err
	}
	res, err := s.engine.Unequip(ctx, req.GetPlayerId(), inventory.Slot(req.GetSlot()))
	if err != nil {
		return nil, s.toStatus("Unequip", err)
	}
	return equipResultProto(res), nil
}
