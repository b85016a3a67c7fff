// Package rules holds the failure taxonomy shared by the casting rules
// packages. Every lookup or precondition failure carries a machine-readable
// reason in its metadata so callers can branch without string matching.
package rules

import (
	"github.com/manaforge/spellcast/internal/errors"
)

// MetaReason is the metadata key carrying the failure reason
const MetaReason = "reason"

// Failure reasons
const (
	ReasonUnknownSpell                 = "unknown_spell"
	ReasonUnknownDomain                = "unknown_domain"
	ReasonInvalidDomain                = "invalid_domain"
	ReasonInsufficientMP               = "insufficient_mp"
	ReasonUnknownDamageType            = "unknown_damage_type"
	ReasonInvalidMetamagicType         = "invalid_metamagic_type"
	ReasonMetamagicPrerequisiteUnmet   = "metamagic_prerequisite_unmet"
	ReasonUnknownCombination           = "unknown_combination"
	ReasonCombinationPrerequisiteUnmet = "combination_prerequisite_unmet"
	ReasonCombinationSizeOutOfRange    = "combination_size_out_of_range"
)

// Reason extracts the failure reason from an error, or "" if none is set
func Reason(err error) string {
	meta := errors.GetMeta(err)
	if meta == nil {
		return ""
	}
	if reason, ok := meta[MetaReason].(string); ok {
		return reason
	}
	return ""
}

// HasReason reports whether the error carries the given failure reason
func HasReason(err error, reason string) bool {
	return Reason(err) == reason
}

// ErrUnknownSpell builds the failure for a spell absent from config
func ErrUnknownSpell(name string) *errors.Error {
	return errors.NotFoundf("spell %q is not defined", name).
		WithMeta(MetaReason, ReasonUnknownSpell).
		WithMeta("spell", name)
}

// ErrUnknownDomain builds the failure for a domain absent from the domain
// catalog. Never defaulted to 1.0 efficiency; an unknown domain is a
// configuration bug and must surface.
func ErrUnknownDomain(name string) *errors.Error {
	return errors.NotFoundf("domain %q is not defined", name).
		WithMeta(MetaReason, ReasonUnknownDomain).
		WithMeta("domain", name)
}

// ErrInvalidDomain builds the failure for a domain outside the spell's
// valid set
func ErrInvalidDomain(spellName, domain string) *errors.Error {
	return errors.FailedPreconditionf("domain %q cannot cast %q", domain, spellName).
		WithMeta(MetaReason, ReasonInvalidDomain).
		WithMeta("spell", spellName).
		WithMeta("domain", domain)
}

// ErrInsufficientMP builds the failure for a cast the caster cannot afford
func ErrInsufficientMP(required, available int) *errors.Error {
	return errors.ResourceExhaustedf("cast requires %d MP but only %d available", required, available).
		WithMeta(MetaReason, ReasonInsufficientMP).
		WithMeta("required_mp", required).
		WithMeta("available_mp", available)
}

// ErrUnknownDamageType builds the failure for an unvalidated damage type id
func ErrUnknownDamageType(damageType string) *errors.Error {
	return errors.InvalidArgumentf("damage type %q is not recognized", damageType).
		WithMeta(MetaReason, ReasonUnknownDamageType).
		WithMeta("damage_type", damageType)
}

// ErrInvalidMetamagicType builds the failure for a metamagic type absent
// from the catalog
func ErrInvalidMetamagicType(metamagicType string) *errors.Error {
	return errors.NotFoundf("metamagic type %q is not defined", metamagicType).
		WithMeta(MetaReason, ReasonInvalidMetamagicType).
		WithMeta("metamagic_type", metamagicType)
}

// ErrMetamagicPrerequisiteUnmet builds the failure naming the offending
// type and the unmet prerequisite tag
func ErrMetamagicPrerequisiteUnmet(metamagicType, prerequisite string) *errors.Error {
	return errors.FailedPreconditionf("metamagic %q requires %s", metamagicType, prerequisite).
		WithMeta(MetaReason, ReasonMetamagicPrerequisiteUnmet).
		WithMeta("metamagic_type", metamagicType).
		WithMeta("prerequisite", prerequisite)
}

// ErrUnknownCombination builds the failure for a combination absent from
// the catalog
func ErrUnknownCombination(name string) *errors.Error {
	return errors.NotFoundf("spell combination %q is not defined", name).
		WithMeta(MetaReason, ReasonUnknownCombination).
		WithMeta("combination", name)
}

// ErrCombinationPrerequisiteUnmet builds the failure for a spell set that
// does not satisfy the combination's prerequisites
func ErrCombinationPrerequisiteUnmet(name, prerequisite string) *errors.Error {
	return errors.FailedPreconditionf("combination %q requires %s", name, prerequisite).
		WithMeta(MetaReason, ReasonCombinationPrerequisiteUnmet).
		WithMeta("combination", name).
		WithMeta("prerequisite", prerequisite)
}

// ErrCombinationSizeOutOfRange builds the failure for a spell set outside
// the combination's size bounds
func ErrCombinationSizeOutOfRange(name string, got, minSpells, maxSpells int) *errors.Error {
	return errors.OutOfRangef("combination %q takes %d-%d spells, got %d", name, minSpells, maxSpells, got).
		WithMeta(MetaReason, ReasonCombinationSizeOutOfRange).
		WithMeta("combination", name).
		WithMeta("spell_count", got)
}
