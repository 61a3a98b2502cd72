// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package main

import (
	"github.com/juju/errors"
	"github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	"go.uber.org/mock/gomock"
	gc "gopkg.in/check.v1"

	"github.com/juju/gocharm/backend/mocks"
	"github.com/juju/gocharm/core/action"
	"github.com/juju/gocharm/core/hooks"
	"github.com/juju/gocharm/core/network"
	"github.com/juju/gocharm/core/status"
	"github.com/juju/gocharm/model"
)

type charmSuite struct {
	testing.IsolationSuite

	backend *mocks.MockBackend
}

var _ = gc.Suite(&charmSuite{})

func (s *charmSuite) setupMocks(c *gc.C) *gomock.Controller {
	ctrl := gomock.NewController(c)
	s.backend = mocks.NewMockBackend(ctrl)
	s.backend.EXPECT().Log(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	return ctrl
}

func (s *charmSuite) newModel(c *gc.C, kind model.InvocationKind) *model.Model[charmConfig] {
	m, err := model.New[charmConfig](s.backend, kind)
	c.Assert(err, jc.ErrorIsNil)
	return m
}

func (s *charmSuite) handle(c *gc.C, kind hooks.Kind) (status.Info, error) {
	event, err := hooks.NewEvent(kind)
	c.Assert(err, jc.ErrorIsNil)
	return handleEvent(s.newModel(c, model.HookInvocation), event)
}

func (s *charmSuite) TestInstall(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.backend.EXPECT().SetStatus(status.NewMaintenance("installing")).Return(nil)
	s.backend.EXPECT().Config().Return(map[string]interface{}{}, nil)

	info, err := s.handle(c, hooks.Install)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(info, gc.Equals, status.NewBlocked("port not configured"))
}

func (s *charmSuite) TestConfigChangedOpensPort(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.backend.EXPECT().Config().Return(map[string]interface{}{"port": float64(8080)}, nil).Times(1)
	s.backend.EXPECT().UnitState().Return(map[string]string{"port": "80"}, nil)
	gomock.InOrder(
		s.backend.EXPECT().ClosePort(network.MustParsePortRange("80/tcp"), nil).Return(nil),
		s.backend.EXPECT().OpenPort(network.MustParsePortRange("8080/tcp"), nil).Return(nil),
		s.backend.EXPECT().SetUnitState("port", "8080").Return(nil),
	)

	info, err := s.handle(c, hooks.ConfigChanged)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(info, gc.Equals, status.NewActive("listening on 8080/tcp"))
}

func (s *charmSuite) TestConfigChangedUnchanged(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.backend.EXPECT().Config().Return(map[string]interface{}{"port": float64(8080)}, nil)
	s.backend.EXPECT().UnitState().Return(map[string]string{"port": "8080"}, nil)

	info, err := s.handle(c, hooks.ConfigChanged)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(info.Status, gc.Equals, status.Active)
}

func (s *charmSuite) TestConfigChangedPortRemoved(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.backend.EXPECT().Config().Return(map[string]interface{}{}, nil)
	s.backend.EXPECT().UnitState().Return(map[string]string{"port": "80"}, nil)
	s.backend.EXPECT().ClosePort(network.MustParsePortRange("80/tcp"), nil).Return(nil)
	s.backend.EXPECT().DeleteUnitState("port").Return(nil)

	info, err := s.handle(c, hooks.ConfigChanged)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(info.Status, gc.Equals, status.Blocked)
}

func (s *charmSuite) TestConfigError(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.backend.EXPECT().Config().Return(nil, errors.New("boom"))

	_, err := s.handle(c, hooks.UpdateStatus)
	c.Check(err, gc.ErrorMatches, "reading charm config: boom")
}

func (s *charmSuite) TestLeaderElected(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.backend.EXPECT().IsLeader().Return(true, nil)
	s.backend.EXPECT().SetApplicationStatus(status.NewActive("")).Return(nil)
	s.backend.EXPECT().Config().Return(map[string]interface{}{"port": float64(80)}, nil)

	_, err := s.handle(c, hooks.LeaderElected)
	c.Assert(err, jc.ErrorIsNil)
}

func (s *charmSuite) TestEchoFails(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.backend.EXPECT().ActionLog("echoing parameters").Return(nil)

	result, err := handleAction(s.newModel(c, model.ActionInvocation), charmActions{
		EchoParams: &echoParams{StringWithDefault: "x", Fail: true},
	})
	c.Assert(err, jc.ErrorIsNil)
	message, failed := result.Failed()
	c.Check(failed, jc.IsTrue)
	c.Check(message, gc.Equals, "requested failure")
	tokens, err := action.Flatten(result.Values())
	c.Assert(err, jc.ErrorIsNil)
	c.Check(tokens, jc.DeepEquals, []string{"params.fail=true", "params.string-with-default=x"})
}

func (s *charmSuite) TestGreet(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.backend.EXPECT().Config().Return(map[string]interface{}{"greeting": "hello"}, nil)
	s.backend.EXPECT().UnitName().Return("echo/0")

	result, err := handleAction(s.newModel(c, model.ActionInvocation), charmActions{Greet: &struct{}{}})
	c.Assert(err, jc.ErrorIsNil)
	_, failed := result.Failed()
	c.Check(failed, jc.IsFalse)
	tokens, err := action.Flatten(result.Values())
	c.Assert(err, jc.ErrorIsNil)
	c.Check(tokens, jc.DeepEquals, []string{"greeting=hello", "unit=echo/0"})
}

func (s *charmSuite) TestNoAction(c *gc.C) {
	defer s.setupMocks(c).Finish()

	_, err := handleAction(s.newModel(c, model.ActionInvocation), charmActions{})
	c.Check(err, jc.ErrorIs, errors.NotImplemented)
}
