// Package combat implements the combat orchestrator: session lifecycle,
// turn processing, the damage pipeline, abilities, and reward settlement.
package combat

//go:generate mockgen -destination=mock/mock_service.go -package=combatmock github.com/KirkDiggler/combat-api/internal/orchestrators/combat Service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/combat-api/internal/content"
	"github.com/KirkDiggler/combat-api/internal/dice"
	"github.com/KirkDiggler/combat-api/internal/entities"
	"github.com/KirkDiggler/combat-api/internal/errors"
	"github.com/KirkDiggler/combat-api/internal/orchestrators/loot"
	"github.com/KirkDiggler/combat-api/internal/pkg/clock"
	"github.com/KirkDiggler/combat-api/internal/pkg/idgen"
	"github.com/KirkDiggler/combat-api/internal/repositories/player"
)

// Service defines the interface for combat operations
type Service interface {
	// InitializeCombat starts a fight against a monster definition.
	// Fails with FailedPrecondition if the player is already fighting.
	InitializeCombat(ctx context.Context, input *InitializeCombatInput) (*InitializeCombatOutput, error)

	// ProcessTurn advances both attack timers against the current time,
	// resolving an attack for each side whose timer has elapsed. The
	// player's attack resolves first and a monster defeat skips the
	// monster's attack entirely.
	ProcessTurn(ctx context.Context, input *ProcessTurnInput) (*ProcessTurnOutput, error)

	// UseAbility spends mana and cooldown to land an ability hit. It does
	// not touch the player's attack timer.
	UseAbility(ctx context.Context, input *UseAbilityInput) (*UseAbilityOutput, error)

	// AwardRewards settles a concluded fight, clears the session, and
	// persists the player.
	AwardRewards(ctx context.Context, input *AwardRewardsInput) (*AwardRewardsOutput, error)

	// Flee abandons the fight without settlement. No rewards, no penalty.
	Flee(ctx context.Context, input *FleeInput) (*FleeOutput, error)

	// ListWeaponAbilities returns the abilities the player can use with
	// the currently equipped weapon.
	ListWeaponAbilities(ctx context.Context, input *ListWeaponAbilitiesInput) (*ListWeaponAbilitiesOutput, error)
}

// Config holds the dependencies for the combat orchestrator
type Config struct {
	PlayerRepo player.Repository
	Content    *content.Library
	Loot       loot.Service
	Clock      clock.Clock
	IDGen      idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PlayerRepo == nil {
		vb.RequiredField("PlayerRepo")
	}
	if c.Content == nil {
		vb.RequiredField("Content")
	}
	if c.Loot == nil {
		vb.RequiredField("Loot")
	}

	return vb.Build()
}

type orchestrator struct {
	playerRepo player.Repository
	content    *content.Library
	loot       loot.Service
	clock      clock.Clock
	idGen      idgen.Generator
}

// NewOrchestrator creates a new combat orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	gen := cfg.IDGen
	if gen == nil {
		gen = idgen.NewUUID("inst")
	}

	return &orchestrator{
		playerRepo: cfg.PlayerRepo,
		content:    cfg.Content,
		loot:       cfg.Loot,
		clock:      c,
		idGen:      gen,
	}, nil
}

func (o *orchestrator) InitializeCombat(ctx context.Context, input *InitializeCombatInput) (*InitializeCombatOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	if input.MonsterID == "" {
		return nil, errors.InvalidArgument("monster ID is required")
	}

	p := input.Player
	if p.InCombat() {
		return nil, errors.FailedPreconditionf("already in combat with %s", p.ActiveCombat.Monster.Name)
	}

	def, ok := o.content.Monsters.Get(input.MonsterID)
	if !ok {
		return nil, errors.NotFoundf("monster %s not found", input.MonsterID)
	}

	monster := snapshotMonster(&def, o.idGen.Generate())
	now := o.clock.Now()

	playerWeapon := o.weaponProfile(p)
	monsterWeapon := o.weaponProfile(monster)

	session := entities.NewCombatSession(monster, now,
		now.Add(attackDelay(playerWeapon)),
		now.Add(attackDelay(monsterWeapon)))
	session.AppendLog(entities.LogSystem, entities.ActorPlayer,
		fmt.Sprintf("You engage %s!", monster.Name), 0, now)
	p.ActiveCombat = session

	slog.InfoContext(ctx, "combat initialized",
		"player_id", p.ID,
		"monster_id", monster.MonsterID,
		"instance_id", monster.InstanceID)

	return &InitializeCombatOutput{
		Monster:            monster,
		AvailableAbilities: o.usableAbilities(p, playerWeapon),
	}, nil
}

func (o *orchestrator) ProcessTurn(ctx context.Context, input *ProcessTurnInput) (*ProcessTurnOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}

	p := input.Player
	if !p.InCombat() {
		return nil, errors.FailedPrecondition("not in combat")
	}

	session := p.ActiveCombat
	monster := session.Monster
	// All timer decisions in this call compare against this single read.
	now := o.clock.Now()
	out := &ProcessTurnOutput{}

	if !now.Before(session.PlayerNextAttack) {
		result, err := o.resolveDamage(p, monster, resolveOptions{})
		if err != nil {
			return nil, err
		}

		out.PlayerAttacked = true
		out.MonsterDamage = result.Damage
		defeated := session.DamageMonster(result.Damage)
		o.logAttack(session, entities.ActorPlayer, result, now,
			fmt.Sprintf("You hit %s with %s for %d damage", monster.Name, result.WeaponName, result.Damage),
			fmt.Sprintf("Critical hit! You strike %s with %s for %d damage", monster.Name, result.WeaponName, result.Damage),
			fmt.Sprintf("%s dodges your attack", monster.Name))

		p.CombatRecord.TotalDamageDealt += result.Damage
		if result.IsCrit {
			p.CombatRecord.CriticalHits++
		}

		session.PlayerNextAttack = now.Add(attackDelay(o.weaponProfile(p)))
		session.TurnCount++

		if defeated {
			out.MonsterDefeated = true
			session.AppendLog(entities.LogSystem, entities.ActorPlayer,
				fmt.Sprintf("%s is defeated!", monster.Name), 0, now)
			// No post-mortem retaliation.
			return out, nil
		}
	}

	if !now.Before(session.MonsterNextAttack) {
		result, err := o.resolveDamage(monster, p, resolveOptions{})
		if err != nil {
			return nil, err
		}

		out.MonsterAttacked = true
		out.PlayerDamage = result.Damage
		fatal := p.TakeDamage(result.Damage)
		o.logAttack(session, entities.ActorMonster, result, now,
			fmt.Sprintf("%s hits you with %s for %d damage", monster.Name, result.WeaponName, result.Damage),
			fmt.Sprintf("Critical hit! %s strikes you with %s for %d damage", monster.Name, result.WeaponName, result.Damage),
			fmt.Sprintf("You dodge %s's attack", monster.Name))

		p.CombatRecord.TotalDamageTaken += result.Damage
		if result.IsDodge {
			p.CombatRecord.Dodges++
		}

		session.MonsterNextAttack = now.Add(attackDelay(o.weaponProfile(monster)))

		if fatal {
			out.PlayerDefeated = true
			session.AppendLog(entities.LogSystem, entities.ActorMonster,
				fmt.Sprintf("You are defeated by %s!", monster.Name), 0, now)
		}
	}

	return out, nil
}

func (o *orchestrator) UseAbility(ctx context.Context, input *UseAbilityInput) (*UseAbilityOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	if input.AbilityID == "" {
		return nil, errors.InvalidArgument("ability ID is required")
	}

	p := input.Player
	if !p.InCombat() {
		return nil, errors.FailedPrecondition("not in combat")
	}

	ability, ok := o.content.Abilities.Get(input.AbilityID)
	if !ok {
		return nil, errors.NotFoundf("ability %s not found", input.AbilityID)
	}

	session := p.ActiveCombat
	monster := session.Monster
	now := o.clock.Now()

	if remaining := session.CooldownRemaining(input.AbilityID, now); remaining > 0 {
		return nil, errors.FailedPreconditionf("%s is on cooldown for %.1fs", ability.Name, remaining.Seconds()).
			WithMeta("remaining_seconds", remaining.Seconds())
	}
	if p.Mana.Current < ability.ManaCost {
		return nil, errors.FailedPreconditionf("insufficient mana: %s costs %d, have %d",
			ability.Name, ability.ManaCost, p.Mana.Current)
	}

	p.UseMana(ability.ManaCost)

	result, err := o.resolveDamage(p, monster, resolveOptions{
		isAbility:    true,
		abilityPower: ability.PowerMultiplier,
		critBonus:    ability.Effects.CritChanceBonus,
	})
	if err != nil {
		return nil, err
	}

	defeated := session.DamageMonster(result.Damage)
	message := fmt.Sprintf("You use %s on %s for %d damage", ability.Name, monster.Name, result.Damage)
	if result.IsDodge {
		message = fmt.Sprintf("%s dodges your %s", monster.Name, ability.Name)
	}
	session.AppendLog(entities.LogAbility, entities.ActorPlayer, message, result.Damage, now)

	p.CombatRecord.TotalDamageDealt += result.Damage
	if result.IsCrit {
		p.CombatRecord.CriticalHits++
	}

	session.StartCooldown(input.AbilityID, now, secondsToDuration(ability.CooldownSeconds))

	if defeated {
		session.AppendLog(entities.LogSystem, entities.ActorPlayer,
			fmt.Sprintf("%s is defeated!", monster.Name), 0, now)
	}

	return &UseAbilityOutput{
		AbilityName:     ability.Name,
		Damage:          result.Damage,
		IsCrit:          result.IsCrit,
		IsDodge:         result.IsDodge,
		MonsterDefeated: defeated,
	}, nil
}

func (o *orchestrator) AwardRewards(ctx context.Context, input *AwardRewardsInput) (*AwardRewardsOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}

	p := input.Player
	if !p.InCombat() {
		return nil, errors.FailedPrecondition("not in combat")
	}

	monster := p.ActiveCombat.Monster
	out := &AwardRewardsOutput{}

	if input.Victory {
		gold := monster.GoldDrop.Min
		if monster.GoldDrop.Max > monster.GoldDrop.Min {
			gold = dice.IntBetween(monster.GoldDrop.Min, monster.GoldDrop.Max)
		}
		p.AddGold(gold)
		out.Gold = gold

		skillName := entities.DefaultSkillScalar
		if weapon := o.weaponProfile(p); weapon != nil {
			skillName = weapon.SkillScalar
		}
		progress := p.AddSkillExperience(skillName, monster.Experience)
		out.Experience = monster.Experience
		out.SkillProgress = &progress

		drops, err := o.loot.RollTables(ctx, &loot.RollTablesInput{DropTableIDs: monster.LootTables})
		if err != nil {
			return nil, err
		}
		for _, drop := range drops.Drops {
			instance := entities.ItemInstance{
				InstanceID: o.idGen.Generate(),
				ItemID:     drop.ItemID,
				Quantity:   drop.Quantity,
				Qualities:  map[string]int(drop.QualityBonus),
			}
			p.AddItem(instance)
			out.Items = append(out.Items, instance)
		}

		p.CombatRecord.MonstersDefeated++

		slog.InfoContext(ctx, "combat won",
			"player_id", p.ID,
			"monster_id", monster.MonsterID,
			"gold", gold,
			"experience", monster.Experience,
			"drops", len(out.Items))
	} else {
		out.GoldLost = p.Gold
		p.Gold = 0
		p.CombatRecord.Deaths++
		p.Health.Fill()

		slog.InfoContext(ctx, "combat lost",
			"player_id", p.ID,
			"monster_id", monster.MonsterID,
			"gold_lost", out.GoldLost)
	}

	p.ClearCombat()

	if _, err := o.playerRepo.Update(ctx, player.UpdateInput{Player: p}); err != nil {
		return nil, errors.Wrap(err, "persisting settled player")
	}

	return out, nil
}

func (o *orchestrator) Flee(ctx context.Context, input *FleeInput) (*FleeOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}

	p := input.Player
	if !p.InCombat() {
		return nil, errors.FailedPrecondition("not in combat")
	}

	monsterID := p.ActiveCombat.Monster.MonsterID
	p.ClearCombat()

	if _, err := o.playerRepo.Update(ctx, player.UpdateInput{Player: p}); err != nil {
		return nil, errors.Wrap(err, "persisting fled player")
	}

	slog.InfoContext(ctx, "player fled combat",
		"player_id", p.ID,
		"monster_id", monsterID)

	return &FleeOutput{}, nil
}

func (o *orchestrator) ListWeaponAbilities(ctx context.Context, input *ListWeaponAbilitiesInput) (*ListWeaponAbilitiesOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}

	return &ListWeaponAbilitiesOutput{
		Abilities: o.usableAbilities(input.Player, o.weaponProfile(input.Player)),
	}, nil
}

// usableAbilities filters the weapon's ability list by the player's skill
// level in the governing scalar.
func (o *orchestrator) usableAbilities(p *entities.Player, weapon *entities.WeaponProfile) []content.Ability {
	scalar := entities.DefaultSkillScalar
	if weapon != nil {
		scalar = weapon.SkillScalar
	}

	skillLevel := 1
	if skill, ok := p.SkillNamed(scalar); ok {
		skillLevel = skill.Level
	}

	var usable []content.Ability
	for _, ability := range o.content.AbilitiesForWeapon(scalar) {
		if skillLevel >= ability.Requirements.MinSkillLevel {
			usable = append(usable, ability)
		}
	}
	return usable
}

// logAttack appends the right log entry for one resolved attack.
func (o *orchestrator) logAttack(session *entities.CombatSession, actor string, result *damageResult, now time.Time,
	hitMsg, critMsg, dodgeMsg string) {
	switch {
	case result.IsDodge:
		session.AppendLog(entities.LogDodge, actor, dodgeMsg, 0, now)
	case result.IsCrit:
		session.AppendLog(entities.LogCrit, actor, critMsg, result.Damage, now)
	default:
		session.AppendLog(entities.LogDamage, actor, hitMsg, result.Damage, now)
	}
}

// attackDelay converts a weapon's attack speed into the wait before its
// next swing. A nil profile falls back to the unarmed cadence.
func attackDelay(weapon *entities.WeaponProfile) time.Duration {
	speed := entities.Unarmed().AttackSpeed
	if weapon != nil && weapon.AttackSpeed > 0 {
		speed = weapon.AttackSpeed
	}
	return secondsToDuration(speed)
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
