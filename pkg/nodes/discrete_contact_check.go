package nodes

import (
	"context"
	"fmt"
	"time"

	"github.com/reframe-systems/tesseract-planning/pkg/composer"
	"github.com/reframe-systems/tesseract-planning/pkg/contactcheck"
	"github.com/reframe-systems/tesseract-planning/pkg/profiles"
)

// DiscreteContactCheckKind is the node-kind name used by the builder and
// codec registries.
const DiscreteContactCheckKind = "DiscreteContactCheckTask"

// DiscreteContactCheckTask gates a pipeline on a previously planned
// trajectory being collision-free. It samples the trajectory at discrete
// states and queries the environment's collision manager at each one.
//
// The task reconfigures the collision manager it obtains from the
// environment (active links, margins) and does not restore it afterwards;
// callers must not assume the manager's configuration is unchanged after an
// execution.
type DiscreteContactCheckTask struct {
	composer.Node
}

// NewDiscreteContactCheckTask returns the registry-placeholder form: fixed
// name, conditional, no bound input key. It is not directly executable until
// an input key is bound.
func NewDiscreteContactCheckTask() *DiscreteContactCheckTask {
	return &DiscreteContactCheckTask{Node: composer.NewNode(DiscreteContactCheckKind, true)}
}

// NewDiscreteContactCheckTaskWithKey binds the storage key holding the
// trajectory to check.
func NewDiscreteContactCheckTaskWithKey(name, inputKey string, conditional bool) *DiscreteContactCheckTask {
	t := &DiscreteContactCheckTask{Node: composer.NewNode(name, conditional)}
	t.SetInputKeys(inputKey)
	return t
}

// newDiscreteContactCheckFromConfig builds the task from a parsed
// configuration document. The node takes exactly one trajectory input;
// anything else is a construction error.
func newDiscreteContactCheckFromConfig(name string, cfg composer.Config) (composer.Task, error) {
	var base composer.BaseConfig
	if err := composer.DecodeConfig(cfg, &base); err != nil {
		return nil, err
	}
	if len(base.Inputs) == 0 {
		return nil, fmt.Errorf("%w: %s: config missing 'inputs' entry", composer.ErrInvalidConfig, name)
	}
	if len(base.Inputs) > 1 {
		return nil, fmt.Errorf("%w: %s: config 'inputs' entry currently only supports one input key", composer.ErrInvalidConfig, name)
	}
	return NewDiscreteContactCheckTaskWithKey(name, base.Inputs[0], base.Conditional), nil
}

// Execute runs the contact check and reports the verdict to the engine.
// Execution-time problems are encoded in the returned record, never raised.
func (t *DiscreteContactCheckTask) Execute(ctx context.Context, in *composer.Input) *composer.NodeInfo {
	info := composer.NewNodeInfo(t)
	info.Env = in.Problem.Env
	log := in.Log().With("node", t.Name())

	if in.IsAborted() {
		info.Message = "Aborted"
		log.Error(info.Message)
		in.Metrics.ObserveCheck(t.Name(), "aborted", 0)
		return info
	}

	start := time.Now()

	value, err := in.Storage.Get(ctx, t.InputKeys()[0])
	traj, terr := value.AsTrajectory()
	if err != nil || terr != nil {
		info.Message = fmt.Sprintf("input to %s must be a trajectory", t.Name())
		info.Elapsed = time.Since(start)
		log.Error(info.Message)
		in.Metrics.ObserveCheck(t.Name(), "invalid_input", info.Elapsed)
		return info
	}

	profile, perr := profiles.Resolve(in.Profiles, t.Name(), traj.Profile(), in.Problem.ProfileRemapping, traj.ProfileOverrides)
	if perr != nil {
		// Overrides that fail to decode degrade to the base profile.
		log.Warn("ignoring profile overrides", "err", perr)
	}

	manip := traj.Manipulator.Combined(in.Problem.Manipulator)
	env := in.Problem.Env

	group, err := env.JointGroup(manip.GroupName)
	if err != nil {
		info.Message = fmt.Sprintf("failed to get joint group %q: %v", manip.GroupName, err)
		info.Elapsed = time.Since(start)
		log.Error(info.Message)
		in.Metrics.ObserveCheck(t.Name(), "error", info.Elapsed)
		return info
	}
	solver, err := env.StateSolver()
	if err != nil {
		info.Message = fmt.Sprintf("failed to get state solver: %v", err)
		info.Elapsed = time.Since(start)
		log.Error(info.Message)
		in.Metrics.ObserveCheck(t.Name(), "error", info.Elapsed)
		return info
	}
	manager, err := env.DiscreteContactManager()
	if err != nil {
		info.Message = fmt.Sprintf("failed to get discrete contact manager: %v", err)
		info.Elapsed = time.Since(start)
		log.Error(info.Message)
		in.Metrics.ObserveCheck(t.Name(), "error", info.Elapsed)
		return info
	}

	manager.SetActiveLinks(group.ActiveLinkNames())
	manager.ApplyConfig(profile.Config.ManagerConfig)

	contacts, free, err := contactcheck.CheckTrajectory(traj, manager, solver, profile.Config)
	if err != nil {
		info.Message = fmt.Sprintf("contact check failed: %v", err)
		info.Elapsed = time.Since(start)
		log.Error(info.Message)
		in.Metrics.ObserveCheck(t.Name(), "error", info.Elapsed)
		return info
	}

	if !free {
		info.Message = "results are not contact free for process input: " + traj.Description
		info.ContactResults = contacts
		info.Elapsed = time.Since(start)
		log.Info(info.Message)
		total := 0
		for _, m := range contacts {
			total += m.Count()
			for pair, cs := range m.Contacts {
				for _, c := range cs {
					log.Debug("contact",
						"sample", m.Sample,
						"links", pair,
						"dist", c.Distance,
					)
				}
			}
		}
		in.Metrics.ObserveCheck(t.Name(), "contacts", info.Elapsed)
		in.Metrics.AddContacts(total)
		return info
	}

	info.Message = "discrete contact check succeeded"
	info.ReturnValue = composer.ReturnSuccess
	info.Elapsed = time.Since(start)
	log.Debug(info.Message, "elapsed", info.Elapsed)
	in.Metrics.ObserveCheck(t.Name(), "success", info.Elapsed)
	return info
}
