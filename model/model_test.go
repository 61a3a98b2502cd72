// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package model_test

import (
	"github.com/juju/errors"
	"github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	"go.uber.org/mock/gomock"
	gc "gopkg.in/check.v1"

	"github.com/juju/gocharm/backend"
	"github.com/juju/gocharm/backend/mocks"
	"github.com/juju/gocharm/core/network"
	"github.com/juju/gocharm/core/status"
	"github.com/juju/gocharm/model"
)

type charmConfig struct {
	Name string `json:"name"`
	Port int    `json:"port"`
}

type baseSuite struct {
	testing.IsolationSuite

	backend *mocks.MockBackend
}

func (s *baseSuite) setupMocks(c *gc.C) *gomock.Controller {
	ctrl := gomock.NewController(c)
	s.backend = mocks.NewMockBackend(ctrl)
	return ctrl
}

func (s *baseSuite) newModel(c *gc.C, kind model.InvocationKind) *model.Model[charmConfig] {
	m, err := model.New[charmConfig](s.backend, kind)
	c.Assert(err, jc.ErrorIsNil)
	return m
}

type ModelSuite struct {
	baseSuite
}

var _ = gc.Suite(&ModelSuite{})

func (s *ModelSuite) TestNewValidation(c *gc.C) {
	_, err := model.New[charmConfig](nil, model.HookInvocation)
	c.Check(err, jc.ErrorIs, errors.NotValid)
	c.Check(err, gc.ErrorMatches, "nil Backend not valid")

	defer s.setupMocks(c).Finish()
	_, err = model.New[charmConfig](s.backend, "upgrade")
	c.Check(err, gc.ErrorMatches, `invocation kind "upgrade" not valid`)
}

func (s *ModelSuite) TestConfigFetchedOnce(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.backend.EXPECT().Config().Return(map[string]interface{}{
		"name": "wiki",
		"port": 8080,
	}, nil).Times(1)

	m := s.newModel(c, model.HookInvocation)
	for i := 0; i < 3; i++ {
		config, err := m.Config()
		c.Assert(err, jc.ErrorIsNil)
		c.Check(config, jc.DeepEquals, charmConfig{Name: "wiki", Port: 8080})
	}
}

func (s *ModelSuite) TestConfigNotFetchedUnlessUsed(c *gc.C) {
	defer s.setupMocks(c).Finish()

	// No expectations: building a model must not talk to the agent.
	s.newModel(c, model.HookInvocation)
}

func (s *ModelSuite) TestConfigBackendError(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.backend.EXPECT().Config().Return(nil, errors.New("boom")).Times(1)

	m := s.newModel(c, model.HookInvocation)
	_, err := m.Config()
	c.Check(err, gc.ErrorMatches, "reading charm config: boom")
	_, err = m.Config()
	c.Check(err, gc.ErrorMatches, "reading charm config: boom")
}

func (s *ModelSuite) TestConfigDecodeError(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.backend.EXPECT().Config().Return(map[string]interface{}{
		"port": "eighty",
	}, nil)

	m := s.newModel(c, model.HookInvocation)
	_, err := m.Config()
	c.Check(err, gc.ErrorMatches, `(?s)decoding charm config: .*port.*`)
}

func (s *ModelSuite) TestIsLeaderFetchedOnce(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.backend.EXPECT().IsLeader().Return(true, nil).Times(1)

	m := s.newModel(c, model.HookInvocation)
	leader, err := m.IsLeader()
	c.Assert(err, jc.ErrorIsNil)
	c.Check(leader, jc.IsTrue)
	tools, ok, err := m.Leader()
	c.Assert(err, jc.ErrorIsNil)
	c.Check(ok, jc.IsTrue)
	c.Check(tools, gc.NotNil)
}

func (s *ModelSuite) TestLeaderNotLeader(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.backend.EXPECT().IsLeader().Return(false, nil)

	m := s.newModel(c, model.HookInvocation)
	tools, ok, err := m.Leader()
	c.Assert(err, jc.ErrorIsNil)
	c.Check(ok, jc.IsFalse)
	c.Check(tools, gc.IsNil)
}

func (s *ModelSuite) TestLeaderError(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.backend.EXPECT().IsLeader().Return(false, errors.New("leadership status unknown: boom"))

	m := s.newModel(c, model.HookInvocation)
	_, _, err := m.Leader()
	c.Check(err, gc.ErrorMatches, "leadership status unknown: boom")
}

func (s *ModelSuite) TestPortsStaleAfterOpen(c *gc.C) {
	defer s.setupMocks(c).Finish()

	opened := []network.PortRange{network.MustParsePortRange("80/tcp")}
	gomock.InOrder(
		s.backend.EXPECT().OpenedPorts().Return(opened, nil).Times(1),
		s.backend.EXPECT().OpenPort(network.MustParsePortRange("443/tcp"), []string{"website"}).Return(nil),
	)

	m := s.newModel(c, model.HookInvocation)
	ports, err := m.Ports()
	c.Assert(err, jc.ErrorIsNil)
	c.Check(ports, jc.DeepEquals, opened)

	err = m.OpenPort(network.MustParsePortRange("443/tcp"), "website")
	c.Assert(err, jc.ErrorIsNil)

	ports, err = m.Ports()
	c.Assert(err, jc.ErrorIsNil)
	c.Check(ports, jc.DeepEquals, opened)
}

func (s *ModelSuite) TestClosePort(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.backend.EXPECT().ClosePort(network.MustParsePortRange("8000-8080/udp"), nil).Return(nil)

	m := s.newModel(c, model.HookInvocation)
	err := m.ClosePort(network.MustParsePortRange("8000-8080/udp"))
	c.Assert(err, jc.ErrorIsNil)
}

func (s *ModelSuite) TestOpenPortInvalid(c *gc.C) {
	defer s.setupMocks(c).Finish()

	m := s.newModel(c, model.HookInvocation)
	err := m.OpenPort(network.PortRange{FromPort: 90, ToPort: 80, Protocol: "tcp"})
	c.Check(err, gc.ErrorMatches, "invalid port range 90-80")
}

func (s *ModelSuite) TestSetStatus(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.backend.EXPECT().SetStatus(status.NewMaintenance("installing")).Return(nil)

	m := s.newModel(c, model.HookInvocation)
	c.Assert(m.SetStatus(status.NewMaintenance("installing")), jc.ErrorIsNil)
	err := m.SetStatus(status.Info{Status: "error"})
	c.Check(err, gc.ErrorMatches, `status "error" not valid`)
}

func (s *ModelSuite) TestLogger(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.backend.EXPECT().Log(backend.LevelWarning, "disk almost full")

	m := s.newModel(c, model.HookInvocation)
	c.Check(m.Logger().Name(), gc.Equals, model.CharmLoggerName)
	m.Logger().Warningf("disk almost full")
}

func (s *ModelSuite) TestRebootHookOnly(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.backend.EXPECT().Reboot(true).Return(nil)

	err := s.newModel(c, model.HookInvocation).Reboot(true)
	c.Assert(err, jc.ErrorIsNil)

	err = s.newModel(c, model.ActionInvocation).Reboot(true)
	c.Check(err, jc.ErrorIs, errors.NotImplemented)
	c.Check(errors.Cause(err), gc.Equals, model.ErrRestrictedContext)
}

func (s *ModelSuite) TestActionLogActionOnly(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.backend.EXPECT().ActionLog("halfway").Return(nil)

	err := s.newModel(c, model.ActionInvocation).ActionLog("halfway")
	c.Assert(err, jc.ErrorIsNil)

	err = s.newModel(c, model.HookInvocation).ActionLog("halfway")
	c.Check(errors.Cause(err), gc.Equals, model.ErrRestrictedContext)
}

func (s *ModelSuite) TestKind(c *gc.C) {
	defer s.setupMocks(c).Finish()

	c.Check(s.newModel(c, model.HookInvocation).Kind(), gc.Equals, model.HookInvocation)
	c.Check(s.newModel(c, model.ActionInvocation).Kind(), gc.Equals, model.ActionInvocation)
}
