package launchd_test

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"code.cloudfoundry.org/macsvc/errors"
	"code.cloudfoundry.org/macsvc/host"
	"code.cloudfoundry.org/macsvc/launchd"
	"code.cloudfoundry.org/macsvc/launchd/mocks"
	"code.cloudfoundry.org/macsvc/runner"
	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

const (
	serviceName = "com.macsvc.integration.test"
	agentName   = "com.macsvc.agent.test"
	helperName  = "com.macsvc.helper"
)

var _ = Describe("Manager", func() {
	var (
		mockController *gomock.Controller
		mockRunner     *mocks.MockRunner
		mockHost       *mocks.MockHost
		tmpDir         string
		daemonsDir     string
		agentsDir      string
		servicePath    string
		agentPath      string
		helperPath     string
		subject        *launchd.Manager
		noOpts         = runner.Options{}
		timeoutOpts    = runner.Options{Timeout: 30 * time.Second}
		aliceOpts      = runner.Options{RunAs: "alice"}
	)

	BeforeEach(func() {
		mockController = gomock.NewController(GinkgoT())
		mockRunner = mocks.NewMockRunner(mockController)
		mockHost = mocks.NewMockHost(mockController)

		dir, err := ioutil.TempDir("", "launchd")
		Expect(err).NotTo(HaveOccurred())
		tmpDir, err = filepath.EvalSymlinks(dir)
		Expect(err).NotTo(HaveOccurred())

		daemonsDir = filepath.Join(tmpDir, "Library", "LaunchDaemons")
		agentsDir = filepath.Join(tmpDir, "Users", "alice", "Library", "LaunchAgents")
		Expect(os.MkdirAll(daemonsDir, 0755)).To(Succeed())
		Expect(os.MkdirAll(agentsDir, 0755)).To(Succeed())
		Expect(os.MkdirAll(filepath.Join(tmpDir, "Users", "Shared"), 0755)).To(Succeed())

		servicePath = writePlist(daemonsDir, serviceName+".plist", keepAliveJob(serviceName))
		helperPath = writePlist(daemonsDir, "helper.plist", onDemandJob(helperName))
		agentPath = writePlist(agentsDir, agentName+".plist", keepAliveJob(agentName))

		subject = &launchd.Manager{
			Runner:        mockRunner,
			Host:          mockHost,
			LaunchctlPath: "launchctl",
			PListDir:      daemonsDir,
			LaunchdPaths:  []string{daemonsDir, filepath.Join(tmpDir, "System", "Library", "LaunchDaemons")},
			UsersDir:      filepath.Join(tmpDir, "Users"),
			Timeout:       30 * time.Second,
		}

		mockHost.EXPECT().ConsoleUser().Return(host.ConsoleUser{UID: 501, Username: "alice"}, nil).AnyTimes()
	})

	AfterEach(func() {
		mockController.Finish()
		os.RemoveAll(tmpDir)
	})

	Describe("AvailableServices", func() {
		It("finds daemons and user agents keyed by lower-cased label", func() {
			services, err := subject.AvailableServices(false)
			Expect(err).NotTo(HaveOccurred())
			Expect(services).To(HaveLen(3))
			Expect(services).To(HaveKey(serviceName))
			Expect(services).To(HaveKey(helperName))
			Expect(services[agentName].FilePath).To(Equal(agentPath))
		})

		It("ignores files that are not plists", func() {
			Expect(ioutil.WriteFile(filepath.Join(daemonsDir, "README"), []byte("hello"), 0644)).To(Succeed())

			services, err := subject.AvailableServices(false)
			Expect(err).NotTo(HaveOccurred())
			Expect(services).To(HaveLen(3))
		})

		It("follows symlinks and skips broken ones", func() {
			Expect(os.Symlink(servicePath, filepath.Join(agentsDir, "linked.plist"))).To(Succeed())
			Expect(os.Symlink(filepath.Join(tmpDir, "gone.plist"), filepath.Join(daemonsDir, "broken.plist"))).To(Succeed())

			services, err := subject.AvailableServices(true)
			Expect(err).NotTo(HaveOccurred())
			Expect(services).To(HaveLen(3))
			Expect(services[serviceName].FilePath).To(Equal(servicePath))
		})

		It("walks launchd directories that are themselves symlinks", func() {
			realDir := filepath.Join(tmpDir, "Volumes", "Daemons")
			Expect(os.MkdirAll(realDir, 0755)).To(Succeed())
			linkedPath := writePlist(realDir, "linked.plist", keepAliveJob("com.macsvc.linked"))
			linkDir := filepath.Join(tmpDir, "Library", "LinkedDaemons")
			Expect(os.Symlink(realDir, linkDir)).To(Succeed())
			subject.LaunchdPaths = append(subject.LaunchdPaths, linkDir)

			services, err := subject.AvailableServices(true)
			Expect(err).NotTo(HaveOccurred())
			Expect(services).To(HaveLen(4))
			Expect(services).To(HaveKey("com.macsvc.linked"))
			Expect(services["com.macsvc.linked"].FilePath).To(Equal(linkedPath))
		})

		It("finds agents in a symlinked LaunchAgents directory", func() {
			realDir := filepath.Join(tmpDir, "Volumes", "BobAgents")
			Expect(os.MkdirAll(realDir, 0755)).To(Succeed())
			writePlist(realDir, "bob.plist", keepAliveJob("com.macsvc.bob"))
			bobLibrary := filepath.Join(tmpDir, "Users", "bob", "Library")
			Expect(os.MkdirAll(bobLibrary, 0755)).To(Succeed())
			Expect(os.Symlink(realDir, filepath.Join(bobLibrary, "LaunchAgents"))).To(Succeed())

			services, err := subject.AvailableServices(true)
			Expect(err).NotTo(HaveOccurred())
			Expect(services).To(HaveKey("com.macsvc.bob"))
		})

		It("keys plists without a Label by file name", func() {
			writePlist(daemonsDir, "Unlabelled.plist", `<key>RunAtLoad</key><true/>`)

			services, err := subject.AvailableServices(true)
			Expect(err).NotTo(HaveOccurred())
			Expect(services).To(HaveKey("unlabelled.plist"))
			Expect(services["unlabelled.plist"].Label()).To(BeEmpty())
		})

		It("converts plists the decoder rejects with plutil", func() {
			oddPath := filepath.Join(daemonsDir, "odd.plist")
			Expect(ioutil.WriteFile(oddPath, []byte("{ this is = not valid"), 0644)).To(Succeed())

			mockRunner.EXPECT().Run(noOpts, "/usr/bin/plutil", "-convert", "xml1", "-o", "-", "--", oddPath).Return(runner.Result{
				Stdout: `<?xml version="1.0" encoding="UTF-8"?>
<plist version="1.0"><dict><key>Label</key><string>com.macsvc.odd</string></dict></plist>`,
			}, nil)

			services, err := subject.AvailableServices(true)
			Expect(err).NotTo(HaveOccurred())
			Expect(services).To(HaveKey("com.macsvc.odd"))
		})

		It("skips plists plutil cannot convert either", func() {
			oddPath := filepath.Join(daemonsDir, "odd.plist")
			Expect(ioutil.WriteFile(oddPath, []byte("{ this is = not valid"), 0644)).To(Succeed())

			mockRunner.EXPECT().Run(noOpts, "/usr/bin/plutil", "-convert", "xml1", "-o", "-", "--", oddPath).Return(runner.Result{
				Stderr:   "odd.plist: Unexpected character",
				ExitCode: 1,
			}, nil)

			services, err := subject.AvailableServices(true)
			Expect(err).NotTo(HaveOccurred())
			Expect(services).To(HaveLen(3))
		})
	})

	Describe("Show", func() {
		It("returns the plist of an existing service", func() {
			svc, err := subject.Show(serviceName)
			Expect(err).NotTo(HaveOccurred())
			Expect(svc.Label()).To(Equal(serviceName))
			Expect(svc.Plist["KeepAlive"]).To(Equal(true))
			Expect(svc.Plist["ProgramArguments"]).To(Equal([]interface{}{"/bin/sleep", "1000"}))
			Expect(svc.FileName).To(Equal(serviceName + ".plist"))
			Expect(svc.FilePath).To(Equal(servicePath))
		})

		It("matches labels, file names and paths in any case", func() {
			for _, name := range []string{"COM.MACSVC.HELPER", "helper", "Helper", helperPath} {
				svc, err := subject.Show(name)
				Expect(err).NotTo(HaveOccurred())
				Expect(svc.Label()).To(Equal(helperName))
			}
		})

		It("reports missing services", func() {
			_, err := subject.Show("spongebob")
			Expect(err).To(MatchError(ContainSubstring("Service not found")))
			Expect(errors.IsNotFound(err)).To(BeTrue())
		})

		It("refreshes the cache before giving up", func() {
			_, err := subject.Show(serviceName)
			Expect(err).NotTo(HaveOccurred())

			writePlist(daemonsDir, "late.plist", onDemandJob("com.macsvc.late"))

			svc, err := subject.Show("com.macsvc.late")
			Expect(err).NotTo(HaveOccurred())
			Expect(svc.FileName).To(Equal("late.plist"))
		})
	})

	Describe("Launchctl", func() {
		It("returns stdout", func() {
			mockRunner.EXPECT().Run(noOpts, "launchctl", "error", "bootstrap", "64").Return(runner.Result{Stdout: "64: unknown error code"}, nil)

			Expect(subject.Launchctl("error", "bootstrap", "64")).To(Equal("64: unknown error code"))
		})

		It("fails when launchctl exits non-zero", func() {
			mockRunner.EXPECT().Run(noOpts, "launchctl", "error", "bootstrap").Return(runner.Result{
				Stderr:   "Usage: launchctl error <type> <code>",
				ExitCode: 64,
			}, nil)

			_, err := subject.Launchctl("error", "bootstrap")
			Expect(err).To(MatchError(ContainSubstring("Failed to error service")))
			Expect(err).To(MatchError(ContainSubstring("retcode: 64")))
			Expect(err).To(BeAssignableToTypeOf(&launchd.CommandError{}))
		})

		It("fails when launchctl reports the service is disabled", func() {
			mockRunner.EXPECT().Run(noOpts, "launchctl", "kickstart", "system/"+serviceName).Return(runner.Result{
				Stderr: "Service is disabled",
			}, nil)

			_, err := subject.Launchctl("kickstart", "system/"+serviceName)
			Expect(err).To(MatchError(ContainSubstring("Failed to kickstart service")))
		})

		It("fails when launchctl cannot be run", func() {
			mockRunner.EXPECT().Run(noOpts, "launchctl", "list").Return(runner.Result{}, fmt.Errorf("some-error"))

			_, err := subject.Launchctl("list")
			Expect(err).To(MatchError("Failed to list service: some-error"))
			Expect(errors.SafeError(err)).To(Equal("Failed to list service"))
		})

		It("runs as another user", func() {
			mockRunner.EXPECT().Run(aliceOpts, "launchctl", "list").Return(runner.Result{Stdout: "PID\tStatus\tLabel"}, nil)

			Expect(subject.LaunchctlAs("alice", "list")).To(Equal("PID\tStatus\tLabel"))
		})
	})

	Describe("List", func() {
		It("lists everything", func() {
			mockRunner.EXPECT().Run(noOpts, "launchctl", "list").Return(runner.Result{Stdout: "PID\tStatus\tLabel\n-\t0\tcom.apple.foo"}, nil)

			Expect(subject.List("")).To(ContainSubstring("PID"))
		})

		It("lists a single daemon by label", func() {
			mockRunner.EXPECT().Run(noOpts, "launchctl", "list", serviceName).Return(runner.Result{Stdout: "{\n\t\"Label\" = \"" + serviceName + "\";\n};"}, nil)

			Expect(subject.List(serviceName)).To(ContainSubstring("{"))
		})

		It("lists agents as the console user", func() {
			mockRunner.EXPECT().Run(aliceOpts, "launchctl", "list", agentName).Return(runner.Result{Stdout: "{}"}, nil)

			Expect(subject.List(agentName)).To(Equal("{}"))
		})

		It("reports missing services", func() {
			_, err := subject.List("spongebob")
			Expect(err).To(MatchError(ContainSubstring("Service not found")))
		})
	})

	Describe("Enable", func() {
		It("enables daemons in the system domain", func() {
			mockRunner.EXPECT().Run(noOpts, "launchctl", "enable", "system/"+serviceName)

			Expect(subject.Enable(serviceName)).To(Succeed())
		})

		It("enables agents in the console user's gui domain", func() {
			mockRunner.EXPECT().Run(noOpts, "launchctl", "enable", "gui/501/"+agentName)

			Expect(subject.Enable(agentName)).To(Succeed())
		})

		It("reports missing services", func() {
			Expect(subject.Enable("spongebob")).To(MatchError(ContainSubstring("Service not found")))
		})
	})

	Describe("Disable", func() {
		It("disables the service target", func() {
			mockRunner.EXPECT().Run(noOpts, "launchctl", "disable", "system/"+serviceName)

			Expect(subject.Disable(serviceName)).To(Succeed())
		})

		It("reports missing services", func() {
			Expect(subject.Disable("spongebob")).To(MatchError(ContainSubstring("Service not found")))
		})
	})

	Describe("Start", func() {
		It("bootstraps the plist into its domain", func() {
			mockRunner.EXPECT().Run(timeoutOpts, "launchctl", "bootstrap", "system", servicePath)

			Expect(subject.Start(serviceName)).To(Succeed())
		})

		It("bootstraps agents into the gui domain", func() {
			mockRunner.EXPECT().Run(timeoutOpts, "launchctl", "bootstrap", "gui/501", agentPath)

			Expect(subject.Start(agentName)).To(Succeed())
		})

		It("returns launchctl failures", func() {
			mockRunner.EXPECT().Run(timeoutOpts, "launchctl", "bootstrap", "system", servicePath).Return(runner.Result{
				Stderr:   "Bootstrap failed: 5: Input/output error",
				ExitCode: 5,
			}, nil)

			Expect(subject.Start(serviceName)).To(MatchError(ContainSubstring("Failed to bootstrap service")))
		})

		It("reports missing services", func() {
			Expect(subject.Start("spongebob")).To(MatchError(ContainSubstring("Service not found")))
		})
	})

	Describe("Stop", func() {
		It("boots the plist out of its domain", func() {
			mockRunner.EXPECT().Run(timeoutOpts, "launchctl", "bootout", "system", servicePath)

			Expect(subject.Stop(serviceName)).To(Succeed())
		})

		It("reports missing services", func() {
			Expect(subject.Stop("spongebob")).To(MatchError(ContainSubstring("Service not found")))
		})
	})

	Describe("Restart", func() {
		It("stops a loaded service before starting it", func() {
			gomock.InOrder(
				mockRunner.EXPECT().Run(noOpts, "launchctl", "list", serviceName).Return(runner.Result{Stdout: "{}"}, nil),
				mockRunner.EXPECT().Run(timeoutOpts, "launchctl", "bootout", "system", servicePath),
				mockRunner.EXPECT().Run(timeoutOpts, "launchctl", "bootstrap", "system", servicePath),
			)

			Expect(subject.Restart(serviceName)).To(Succeed())
		})

		It("only starts a service that is not loaded", func() {
			gomock.InOrder(
				mockRunner.EXPECT().Run(noOpts, "launchctl", "list", serviceName).Return(runner.Result{ExitCode: 113}, nil),
				mockRunner.EXPECT().Run(timeoutOpts, "launchctl", "bootstrap", "system", servicePath),
			)

			Expect(subject.Restart(serviceName)).To(Succeed())
		})

		It("retries the bootstrap while launchd finishes the bootout", func() {
			gomock.InOrder(
				mockRunner.EXPECT().Run(noOpts, "launchctl", "list", serviceName).Return(runner.Result{Stdout: "{}"}, nil),
				mockRunner.EXPECT().Run(timeoutOpts, "launchctl", "bootout", "system", servicePath),
				mockRunner.EXPECT().Run(timeoutOpts, "launchctl", "bootstrap", "system", servicePath).Return(runner.Result{
					Stderr:   "Bootstrap failed: 5: Input/output error",
					ExitCode: 5,
				}, nil),
				mockRunner.EXPECT().Run(timeoutOpts, "launchctl", "bootstrap", "system", servicePath),
			)

			Expect(subject.Restart(serviceName)).To(Succeed())
		})

		It("gives up after three bootstrap failures", func() {
			mockRunner.EXPECT().Run(noOpts, "launchctl", "list", serviceName).Return(runner.Result{ExitCode: 113}, nil)
			mockRunner.EXPECT().Run(timeoutOpts, "launchctl", "bootstrap", "system", servicePath).Return(runner.Result{
				Stderr:   "Bootstrap failed: 5: Input/output error",
				ExitCode: 5,
			}, nil).Times(3)

			Expect(subject.Restart(serviceName)).To(MatchError(ContainSubstring("Failed to bootstrap service")))
		})

		It("does not retry a service that cannot be found", func() {
			Expect(subject.Restart("spongebob")).To(MatchError("Service not found: spongebob"))
		})
	})

	Describe("Status", func() {
		It("is true while launchd reports a live pid", func() {
			mockRunner.EXPECT().Run(noOpts, "launchctl", "list").Return(runner.Result{
				Stdout: "PID\tStatus\tLabel\n1234\t0\t" + serviceName + "\n-\t0\tcom.apple.other",
			}, nil)
			mockHost.EXPECT().ProcessRunning(1234).Return(true)

			Expect(subject.Status(serviceName)).To(BeTrue())
		})

		It("is false for a stopped keep-alive service", func() {
			mockRunner.EXPECT().Run(noOpts, "launchctl", "list").Return(runner.Result{
				Stdout: "PID\tStatus\tLabel\n-\t0\tcom.apple.other",
			}, nil)

			Expect(subject.Status(serviceName)).To(BeFalse())
		})

		It("ignores pids whose process has gone away", func() {
			mockRunner.EXPECT().Run(noOpts, "launchctl", "list").Return(runner.Result{
				Stdout: "PID\tStatus\tLabel\n1234\t0\t" + serviceName,
			}, nil)
			mockHost.EXPECT().ProcessRunning(1234).Return(false)

			Expect(subject.Status(serviceName)).To(BeFalse())
		})

		It("is true for a loaded on-demand service without a pid", func() {
			mockRunner.EXPECT().Run(noOpts, "launchctl", "list").Return(runner.Result{
				Stdout: "PID\tStatus\tLabel\n-\t0\t" + helperName,
			}, nil)
			mockRunner.EXPECT().Run(noOpts, "launchctl", "list", helperName).Return(runner.Result{Stdout: "{}"}, nil)

			Expect(subject.Status(helperName)).To(BeTrue())
		})

		It("checks agents in the console user's session", func() {
			mockRunner.EXPECT().Run(aliceOpts, "launchctl", "list").Return(runner.Result{
				Stdout: "PID\tStatus\tLabel\n4321\t0\t" + agentName,
			}, nil)
			mockHost.EXPECT().ProcessRunning(4321).Return(true)

			Expect(subject.Status(agentName)).To(BeTrue())
		})

		It("is false for missing services", func() {
			Expect(subject.Status("spongebob")).To(BeFalse())
		})
	})

	Describe("PIDs", func() {
		It("returns the live pids of the service", func() {
			mockRunner.EXPECT().Run(noOpts, "launchctl", "list").Return(runner.Result{
				Stdout: "PID\tStatus\tLabel\n1234\t0\t" + serviceName + "\n999\t0\t" + serviceName + ".other",
			}, nil)
			mockHost.EXPECT().ProcessRunning(1234).Return(true)

			Expect(subject.PIDs(serviceName)).To(Equal([]int{1234}))
		})
	})

	Describe("Available and Missing", func() {
		It("reports services on disk", func() {
			Expect(subject.Available(serviceName)).To(BeTrue())
			Expect(subject.Missing(serviceName)).To(BeFalse())
		})

		It("reports services that are not on disk", func() {
			Expect(subject.Available("spongebob")).To(BeFalse())
			Expect(subject.Missing("spongebob")).To(BeTrue())
		})
	})

	Describe("Enabled", func() {
		It("is true when launchctl can list the service", func() {
			mockRunner.EXPECT().Run(noOpts, "launchctl", "list", serviceName).Return(runner.Result{Stdout: "{}"}, nil)

			Expect(subject.Enabled(serviceName)).To(BeTrue())
		})

		It("is false when the service is not loaded", func() {
			mockRunner.EXPECT().Run(noOpts, "launchctl", "list", serviceName).Return(runner.Result{
				Stderr:   "Could not find service \"" + serviceName + "\" in domain for port",
				ExitCode: 113,
			}, nil)

			Expect(subject.Enabled(serviceName)).To(BeFalse())
		})

		It("is false for missing services", func() {
			Expect(subject.Enabled("spongebob")).To(BeFalse())
		})
	})

	Describe("Disabled", func() {
		const printDisabled = `disabled services = {
	"com.apple.nfsd" => true
	"com.apple.nfsd.helper" => false
	"com.apple.ftpd" => false
	"com.apple.newer" => disabled
	"com.apple.newest" => enabled
}
login item associations = {
}`

		BeforeEach(func() {
			mockRunner.EXPECT().Run(noOpts, "launchctl", "print-disabled", "system").Return(runner.Result{Stdout: printDisabled}, nil).AnyTimes()
		})

		It("reads the state of the exact label", func() {
			Expect(subject.Disabled("com.apple.nfsd", "")).To(BeTrue())
			Expect(subject.Disabled("com.apple.ftpd", "system")).To(BeFalse())
			Expect(subject.Disabled("com.apple.nfsd.helper", "")).To(BeFalse())
		})

		It("understands the enabled/disabled wording", func() {
			Expect(subject.Disabled("com.apple.newer", "")).To(BeTrue())
			Expect(subject.Disabled("com.apple.newest", "")).To(BeFalse())
		})

		It("is false for labels launchd does not know", func() {
			Expect(subject.Disabled("spongebob", "")).To(BeFalse())
		})

		It("uses the given domain", func() {
			mockRunner.EXPECT().Run(noOpts, "launchctl", "print-disabled", "gui/501").Return(runner.Result{
				Stdout: `disabled services = {
	"com.macsvc.agent.test" => true
}`,
			}, nil)

			Expect(subject.Disabled(agentName, "gui/501")).To(BeTrue())
		})
	})

	Describe("GetEnabled", func() {
		It("returns the sorted, unique labels launchd has loaded", func() {
			mockRunner.EXPECT().Run(noOpts, "launchctl", "list").Return(runner.Result{
				Stdout: "PID\tStatus\tLabel\n-\t0\tcom.apple.coreservicesd\n123\t0\tcom.apple.akd\n-\t0\tcom.apple.akd",
			}, nil)

			Expect(subject.GetEnabled()).To(Equal([]string{"com.apple.akd", "com.apple.coreservicesd"}))
		})
	})

	Describe("GetAll", func() {
		It("merges loaded services with services on disk", func() {
			mockRunner.EXPECT().Run(noOpts, "launchctl", "list").Return(runner.Result{
				Stdout: "PID\tStatus\tLabel\n-\t0\tcom.apple.coreservicesd\n-\t0\t" + serviceName,
			}, nil)

			Expect(subject.GetAll()).To(Equal([]string{
				"com.apple.coreservicesd",
				agentName,
				helperName,
				serviceName,
			}))
		})
	})
})
