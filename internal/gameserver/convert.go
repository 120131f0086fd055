package gameserver

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cory-johannsen/grindstone/internal/game/action"
	"github.com/cory-johannsen/grindstone/internal/game/condition"
	"github.com/cory-johannsen/grindstone/internal/game/engine"
	"github.com/cory-johannsen/grindstone/internal/game/inventory"
	"github.com/cory-johannsen/grindstone/internal/game/progression"
	"github.com/cory-johannsen/grindstone/internal/game/regen"
	"github.com/cory-johannsen/grindstone/internal/game/skill"
	"github.com/cory-johannsen/grindstone/internal/game/stats"
	"github.com/cory-johannsen/grindstone/internal/gameserver/enginev1"
)

// unixNano encodes t for the wire; the zero time is 0.
func unixNano(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

func fromUnixNano(n int64) time.Time {
	if n == 0 {
		return time.Time{}
	}
	return time.Unix(0, n).UTC()
}

func activeActionProto(a *action.ActiveAction) *enginev1.ActiveAction {
	if a == nil {
		return nil
	}
	return &enginev1.ActiveAction{
		PlayerId:                     a.PlayerID,
		ActionId:                     a.ActionID,
		AttemptId:                    a.AttemptID.String(),
		Attempt:                      int32(a.Attempt),
		Loop:                         a.Loop,
		MaxAttempts:                  int32(a.MaxAttempts),
		StartedAtUnixNano:            unixNano(a.StartedAt),
		ExpectedCompletionAtUnixNano: unixNano(a.ExpectedCompletionAt),
	}
}

// ActiveActionFromProto decodes an attempt received from the engine; nil
// decodes to nil.
func ActiveActionFromProto(m *enginev1.ActiveAction) (*action.ActiveAction, error) {
	if m == nil {
		return nil, nil
	}
	id, err := uuid.Parse(m.GetAttemptId())
	if err != nil {
		return nil, fmt.Errorf("parsing attempt id: %w", err)
	}
	return &action.ActiveAction{
		PlayerID:             m.GetPlayerId(),
		ActionID:             m.GetActionId(),
		AttemptID:            id,
		Attempt:              int(m.GetAttempt()),
		Loop:                 m.GetLoop(),
		MaxAttempts:          int(m.GetMaxAttempts()),
		StartedAt:            fromUnixNano(m.GetStartedAtUnixNano()),
		ExpectedCompletionAt: fromUnixNano(m.GetExpectedCompletionAtUnixNano()),
	}, nil
}

func actionResponse(v *action.View) *enginev1.ActionResponse {
	if v == nil {
		return &enginev1.ActionResponse{State: string(action.StateIdle)}
	}
	return &enginev1.ActionResponse{
		State: string(v.State),
		View: &enginev1.ActionView{
			Action:            activeActionProto(&v.ActiveAction),
			State:             string(v.State),
			Progress:          v.Progress,
			RemainingMs:       v.Remaining.Milliseconds(),
			ServerNowUnixNano: unixNano(v.ServerNow),
		},
	}
}

func progressionProto(p progression.Progress) *enginev1.Progression {
	return &enginev1.Progression{
		Level:      int32(p.Level),
		TotalXp:    p.TotalXP,
		XpInLevel:  p.XPInLevel,
		XpToNext:   p.XPToNext,
		IsMaxLevel: p.IsMaxLevel,
	}
}

func stacksProto(in []inventory.Stack) []*enginev1.ItemStack {
	var out []*enginev1.ItemStack
	for _, s := range in {
		out = append(out, &enginev1.ItemStack{ItemId: s.ItemID, Quantity: int32(s.Quantity)})
	}
	return out
}

func completionProto(c action.Completion) *enginev1.Completion {
	return &enginev1.Completion{
		PlayerId:            c.PlayerID,
		ActionId:            c.ActionID,
		AttemptId:           c.AttemptID.String(),
		Attempt:             int32(c.Attempt),
		Success:             c.Success,
		Xp:                  c.XP,
		Outputs:             stacksProto(c.Outputs),
		Progress:            progressionProto(c.Progress),
		CompletedAtUnixNano: unixNano(c.CompletedAt),
		Next:                activeActionProto(c.Next),
		StopReason:          string(c.StopReason),
	}
}

func stopResultProto(r action.StopResult) *enginev1.StopActionResponse {
	out := &enginev1.StopActionResponse{Cancelled: activeActionProto(r.Cancelled)}
	for _, c := range r.Completions {
		out.Completions = append(out.Completions, completionProto(c))
	}
	return out
}

func statsProto(s stats.AggregatedStats) *enginev1.Stats {
	return &enginev1.Stats{
		Vitality:  int32(s.Vitality),
		Strength:  int32(s.Strength),
		Speed:     int32(s.Speed),
		Dexterity: int32(s.Dexterity),
		MaxHp:     int32(s.MaxHP),
		MaxSp:     int32(s.MaxSP),
	}
}

func statsFromProto(m *enginev1.Stats) stats.AggregatedStats {
	return stats.AggregatedStats{
		Vitality:  int(m.GetVitality()),
		Strength:  int(m.GetStrength()),
		Speed:     int(m.GetSpeed()),
		Dexterity: int(m.GetDexterity()),
		MaxHP:     int(m.GetMaxHp()),
		MaxSP:     int(m.GetMaxSp()),
	}
}

func poolStateProto(p regen.PoolState) *enginev1.PoolState {
	return &enginev1.PoolState{
		CurrentHp:            int32(p.CurrentHP),
		MaxHp:                int32(p.MaxHP),
		CurrentSp:            int32(p.CurrentSP),
		MaxSp:                int32(p.MaxSP),
		HpCarry:              p.HPCarry,
		SpCarry:              p.SPCarry,
		HpRegenPerMin:        p.HPRegenPerMin,
		SpRegenPerMin:        p.SPRegenPerMin,
		LastSyncedAtUnixNano: unixNano(p.LastSyncedAt),
		InBattle:             p.InBattle,
	}
}

// PoolStateFromProto decodes a regen anchor received from the engine.
func PoolStateFromProto(m *enginev1.PoolState) regen.PoolState {
	return regen.PoolState{
		CurrentHP:     int(m.GetCurrentHp()),
		MaxHP:         int(m.GetMaxHp()),
		CurrentSP:     int(m.GetCurrentSp()),
		MaxSP:         int(m.GetMaxSp()),
		HPCarry:       m.GetHpCarry(),
		SPCarry:       m.GetSpCarry(),
		HPRegenPerMin: m.GetHpRegenPerMin(),
		SPRegenPerMin: m.GetSpRegenPerMin(),
		LastSyncedAt:  fromUnixNano(m.GetLastSyncedAtUnixNano()),
		InBattle:      m.GetInBattle(),
	}
}

func statusEntryProto(e condition.Entry) *enginev1.StatusEntry {
	m := &enginev1.StatusEntry{
		Key:          e.Key,
		Source:       e.Source,
		Kind:         string(e.Kind),
		Magnitude:    int32(e.Magnitude),
		Stacks:       int32(e.Stacks),
		MaxStacks:    int32(e.MaxStacks),
		Duration:     int32(e.Duration),
		Remaining:    int32(e.Remaining),
		TickInterval: int32(e.TickInterval),
		Elapsed:      int32(e.Elapsed),
	}
	if e.Stat != nil {
		m.Stat = string(*e.Stat)
	}
	return m
}

func statusEntriesProto(in []condition.Entry) []*enginev1.StatusEntry {
	var out []*enginev1.StatusEntry
	for _, e := range in {
		out = append(out, statusEntryProto(e))
	}
	return out
}

func statusEntryFromProto(m *enginev1.StatusEntry) condition.Entry {
	e := condition.Entry{
		Key:          m.GetKey(),
		Source:       m.GetSource(),
		Kind:         condition.Kind(m.GetKind()),
		Magnitude:    int(m.GetMagnitude()),
		Stacks:       int(m.GetStacks()),
		MaxStacks:    int(m.GetMaxStacks()),
		Duration:     int(m.GetDuration()),
		Remaining:    int(m.GetRemaining()),
		TickInterval: int(m.GetTickInterval()),
		Elapsed:      int(m.GetElapsed()),
	}
	if m.GetStat() != "" {
		stat := stats.Attribute(m.GetStat())
		e.Stat = &stat
	}
	return e
}

func statusViewProto(v engine.StatusView) *enginev1.StatusView {
	out := &enginev1.StatusView{
		Entries:      statusEntriesProto(v.Entries),
		CanAct:       v.CanAct,
		CanUseSkills: v.CanUseSkills,
		Taunted:      v.Taunted,
		Shield:       int32(v.Shield),
	}
	for _, k := range v.Flags {
		out.Flags = append(out.Flags, string(k))
	}
	return out
}

func targetSpecFromProto(m *enginev1.TargetSpec) engine.TargetSpec {
	t := engine.TargetSpec{ID: m.GetId(), Stats: statsFromProto(m.GetStats())}
	if m.GetHasHp() {
		hp := int(m.GetHp())
		t.HP = &hp
	}
	for _, e := range m.GetEffects() {
		t.Effects = append(t.Effects, statusEntryFromProto(e))
	}
	return t
}

func effectOutcomeProto(o skill.EffectOutcome) *enginev1.EffectOutcome {
	return &enginev1.EffectOutcome{
		Order:    int32(o.Order),
		Type:     string(o.Type),
		TargetId: o.TargetID,
		Applied:  o.Applied,
		Reason:   o.Reason,
		Amount:   int32(o.Amount),
		Absorbed: int32(o.Absorbed),
		Stacks:   int32(o.Stacks),
		Removed:  o.Removed,
	}
}

func targetResultProto(r skill.TargetResult) *enginev1.TargetResult {
	out := &enginev1.TargetResult{
		TargetId: r.TargetID,
		Dealt:    int32(r.Dealt),
		Absorbed: int32(r.Absorbed),
		HpAfter:  int32(r.HPAfter),
		Active:   statusEntriesProto(r.Active),
	}
	for _, o := range r.Effects {
		out.Effects = append(out.Effects, effectOutcomeProto(o))
	}
	return out
}

func skillUseProto(u engine.SkillUse) *enginev1.SkillUseResponse {
	out := &enginev1.SkillUseResponse{
		SkillId: u.SkillID,
		Damage: &enginev1.DamageReport{
			DamagePerHit:      int32(u.Damage.DamagePerHit),
			TotalDamage:       int32(u.Damage.TotalDamage),
			DamagePerTurn:     u.Damage.DamagePerTurn,
			DamagePerResource: u.Damage.DamagePerResource,
		},
		StaminaSpent: int32(u.StaminaSpent),
		Pool:         poolStateProto(u.Pool),
		Statuses:     statusViewProto(u.Statuses),
	}
	for _, t := range u.Targets {
		out.Targets = append(out.Targets, targetResultProto(t))
	}
	return out
}

func turnResultProto(r engine.TurnResult) *enginev1.EndTurnResponse {
	out := &enginev1.EndTurnResponse{
		Statuses: statusViewProto(r.Statuses),
		Pool:     poolStateProto(r.Pool),
	}
	for _, ev := range r.Events {
		out.Events = append(out.Events, &enginev1.TickEvent{
			Key:      ev.Key,
			Kind:     string(ev.Kind),
			Amount:   int32(ev.Amount),
			Absorbed: int32(ev.Absorbed),
			Expired:  ev.Expired,
		})
	}
	return out
}

func equipResultProto(r engine.EquipResult) *enginev1.EquipResponse {
	return &enginev1.EquipResponse{
		Slot:     string(r.Slot),
		ItemId:   r.ItemID,
		Previous: r.Previous,
		Stats:    statsProto(r.Stats),
		Pool:     poolStateProto(r.Pool),
	}
}
