package entities_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/geometry"
)

type TraderTestSuite struct {
	suite.Suite
	trader *entities.Trader
}

func TestTraderSuite(t *testing.T) {
	suite.Run(t, new(TraderTestSuite))
}

func (s *TraderTestSuite) SetupTest() {
	s.trader = entities.NewTrader(geometry.Vec2{X: 10, Y: 10})
}

func (s *TraderTestSuite) player(health, armor, balance int) *entities.Player {
	p, err := entities.RestorePlayer(entities.PlayerRecord{Health: health, Armor: armor, Balance: balance})
	s.Require().NoError(err)
	return p
}

func (s *TraderTestSuite) TestHealInsufficientFunds() {
	p := s.player(50, 0, 5)

	s.Assert().Equal(entities.TradeInsufficientFunds, s.trader.Heal(p))
	s.Assert().Equal(50, p.Health())
	s.Assert().Equal(5, p.Balance())
	s.Assert().Equal(entities.TradeInsufficientFunds, s.trader.Result())
}

func (s *TraderTestSuite) TestHeal() {
	p := s.player(50, 0, 15)

	s.Assert().Equal(entities.TradeHealed, s.trader.Heal(p))
	s.Assert().Equal(60, p.Health())
	s.Assert().Equal(5, p.Balance())
}

func (s *TraderTestSuite) TestHealCapsAtMax() {
	p := s.player(95, 0, 15)

	s.trader.Heal(p)
	s.Assert().Equal(entities.PlayerMaxHealth, p.Health())
	s.Assert().Equal(5, p.Balance())
}

func (s *TraderTestSuite) TestRepairAndUpgrade() {
	p := s.player(50, 40, 40)

	s.Assert().Equal(entities.TradeRepaired, s.trader.RepairArmor(p))
	s.Assert().Equal(50, p.Armor())
	s.Assert().Equal(entities.TradeUpgraded, s.trader.UpgradeWeapon(p))
	s.Assert().Equal(entities.WeaponSword2, p.Weapon().Type)
	s.Assert().Equal(0, p.Balance())
	s.Assert().Equal(entities.TradeInsufficientFunds, s.trader.UpgradeWeapon(p))
}

func (s *TraderTestSuite) TestMenuGatesOptions() {
	p := s.player(50, 0, 100)

	s.Assert().Equal(entities.TradeNone, s.trader.Trade(p, entities.TradeOptionHeal))
	s.Assert().Equal(100, p.Balance())

	s.trader.ToggleMenu()
	s.Assert().Equal(entities.TradeHealed, s.trader.Trade(p, entities.TradeOptionHeal))
	s.trader.CloseMenu()
	s.Assert().False(s.trader.MenuOpen())
}

func (s *TraderTestSuite) TestResultExpires() {
	p := s.player(50, 0, 0)
	s.trader.Heal(p)

	s.trader.Tick(1500 * time.Millisecond)
	s.Assert().Equal(entities.TradeInsufficientFunds, s.trader.Result())
	s.trader.Tick(500 * time.Millisecond)
	s.Assert().Equal(entities.TradeNone, s.trader.Result())
}
