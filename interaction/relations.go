package interaction

import (
	"fmt"

	"github.com/liuhe-dev/wuxing/almanac"
	"github.com/liuhe-dev/wuxing/symbol"
)

// RelationOf classifies stem other against the day master by element
// relation and polarity parity.
func RelationOf(dayMaster, other symbol.Stem) (Relation, error) {
	if !dayMaster.Valid() || !other.Valid() {
		return 0, fmt.Errorf("%w: relation of %v vs %v", symbol.ErrUnknownStem, dayMaster, other)
	}

	samePolarity := dayMaster.Yang() == other.Yang()
	dm, oe := dayMaster.Element(), other.Element()

	base, err := baseRelation(dm, oe)
	if err != nil {
		return 0, err
	}
	if samePolarity {
		return base, nil
	}

	return base + 1, nil
}

// baseRelation resolves the same-polarity member of the 5 base pairs.
func baseRelation(dm, oe symbol.Element) (Relation, error) {
	if dm == oe {
		return RelFriend, nil
	}

	gen, err := almanac.GenerationSuccessor(dm)
	if err != nil {
		return 0, err
	}
	if gen == oe {
		return RelEatingGod, nil
	}

	ctl, err := almanac.ControlSuccessor(dm)
	if err != nil {
		return 0, err
	}
	if ctl == oe {
		return RelIndirectWealth, nil
	}

	octl, err := almanac.ControlSuccessor(oe)
	if err != nil {
		return 0, err
	}
	if octl == dm {
		return RelSevenKillings, nil
	}

	// The only remaining relation over the closed 5-cycle.
	return RelIndirectResource, nil
}
