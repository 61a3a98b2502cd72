// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package hooktools_test

import (
	"github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/juju/gocharm/backend/hooktools"
)

type EnvironmentSuite struct {
	testing.IsolationSuite
}

var _ = gc.Suite(&EnvironmentSuite{})

func getenv(vars map[string]string) func(string) string {
	return func(key string) string {
		return vars[key]
	}
}

func (s *EnvironmentSuite) TestHookEnvironment(c *gc.C) {
	env, err := hooktools.NewEnvironment(getenv(map[string]string{
		"JUJU_HOOK_NAME":     "db-relation-changed",
		"JUJU_DISPATCH_PATH": "hooks/db-relation-changed",
		"JUJU_UNIT_NAME":     "wordpress/0",
		"JUJU_MODEL_NAME":    "prod",
		"JUJU_RELATION":      "db",
		"JUJU_RELATION_ID":   "db:3",
		"JUJU_REMOTE_UNIT":   "mysql/1",
		"JUJU_CHARM_DIR":     "/var/lib/juju/agents/unit-wordpress-0/charm",
	}))
	c.Assert(err, jc.ErrorIsNil)
	c.Check(env, jc.DeepEquals, hooktools.Environment{
		HookName:     "db-relation-changed",
		DispatchPath: "hooks/db-relation-changed",
		UnitName:     "wordpress/0",
		ModelName:    "prod",
		Relation:     "db",
		RelationID:   "db:3",
		RemoteUnit:   "mysql/1",
		CharmDir:     "/var/lib/juju/agents/unit-wordpress-0/charm",
	})
}

func (s *EnvironmentSuite) TestDispatchPathHook(c *gc.C) {
	env, err := hooktools.NewEnvironment(getenv(map[string]string{
		"JUJU_DISPATCH_PATH": "hooks/install",
	}))
	c.Assert(err, jc.ErrorIsNil)
	c.Check(env.HookName, gc.Equals, "install")
	c.Check(env.ActionName, gc.Equals, "")
}

func (s *EnvironmentSuite) TestDispatchPathAction(c *gc.C) {
	env, err := hooktools.NewEnvironment(getenv(map[string]string{
		"JUJU_DISPATCH_PATH": "actions/echo-params",
	}))
	c.Assert(err, jc.ErrorIsNil)
	c.Check(env.HookName, gc.Equals, "")
	c.Check(env.ActionName, gc.Equals, "echo-params")
}

func (s *EnvironmentSuite) TestDispatchPathIgnoredWhenNamed(c *gc.C) {
	env, err := hooktools.NewEnvironment(getenv(map[string]string{
		"JUJU_ACTION_NAME":   "backup",
		"JUJU_DISPATCH_PATH": "hooks/install",
	}))
	c.Assert(err, jc.ErrorIsNil)
	c.Check(env.HookName, gc.Equals, "")
	c.Check(env.ActionName, gc.Equals, "backup")
}

func (s *EnvironmentSuite) TestEmpty(c *gc.C) {
	env, err := hooktools.NewEnvironment(getenv(nil))
	c.Assert(err, jc.ErrorIsNil)
	c.Check(env, jc.DeepEquals, hooktools.Environment{})
}

func (s *EnvironmentSuite) TestInvalidUnitName(c *gc.C) {
	_, err := hooktools.NewEnvironment(getenv(map[string]string{
		"JUJU_UNIT_NAME": "wordpress",
	}))
	c.Check(err, gc.ErrorMatches, `JUJU_UNIT_NAME "wordpress" not valid`)
}

func (s *EnvironmentSuite) TestInvalidRemoteUnit(c *gc.C) {
	_, err := hooktools.NewEnvironment(getenv(map[string]string{
		"JUJU_REMOTE_UNIT": "mysql/x",
	}))
	c.Check(err, gc.ErrorMatches, `JUJU_REMOTE_UNIT "mysql/x" not valid`)
}

func (s *EnvironmentSuite) TestHookAndAction(c *gc.C) {
	_, err := hooktools.NewEnvironment(getenv(map[string]string{
		"JUJU_HOOK_NAME":   "install",
		"JUJU_ACTION_NAME": "backup",
	}))
	c.Check(err, gc.ErrorMatches, `both JUJU_HOOK_NAME "install" and JUJU_ACTION_NAME "backup" not valid`)
}

func (s *EnvironmentSuite) TestEnvironmentFromOS(c *gc.C) {
	s.PatchEnvironment("JUJU_HOOK_NAME", "")
	s.PatchEnvironment("JUJU_ACTION_NAME", "")
	s.PatchEnvironment("JUJU_DISPATCH_PATH", "hooks/start")
	s.PatchEnvironment("JUJU_UNIT_NAME", "app/2")
	s.PatchEnvironment("JUJU_REMOTE_UNIT", "")
	env, err := hooktools.EnvironmentFromOS()
	c.Assert(err, jc.ErrorIsNil)
	c.Check(env.HookName, gc.Equals, "start")
	c.Check(env.UnitName, gc.Equals, "app/2")
}
