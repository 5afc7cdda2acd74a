package query_test

import (
	"fmt"

	"code.cloudfoundry.org/macsvc/cfanalytics"
	"code.cloudfoundry.org/macsvc/cmd/query"
	"code.cloudfoundry.org/macsvc/cmd/query/mocks"
	"code.cloudfoundry.org/macsvc/launchd"
	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/spf13/cobra"
)

type MockUI struct {
	WasCalledWith string
}

func (m *MockUI) Say(message string, args ...interface{}) {
	m.WasCalledWith = fmt.Sprintf(message, args...)
}

var _ = Describe("Query", func() {
	var (
		mockController *gomock.Controller
		mockManager    *mocks.MockManager
		mockAnalytics  *mocks.MockAnalytics
		mockUI         *MockUI
		cmds           map[string]*cobra.Command
	)

	BeforeEach(func() {
		mockController = gomock.NewController(GinkgoT())
		mockManager = mocks.NewMockManager(mockController)
		mockAnalytics = mocks.NewMockAnalytics(mockController)
		mockUI = &MockUI{}

		subject := &query.Query{
			UI:        mockUI,
			Manager:   mockManager,
			Analytics: mockAnalytics,
		}

		cmds = map[string]*cobra.Command{}
		for _, cmd := range subject.Cmds() {
			cmd.SetOutput(GinkgoWriter)
			cmds[cmd.Name()] = cmd
		}
	})

	AfterEach(func() {
		mockController.Finish()
	})

	run := func(name string, args ...string) error {
		cmds[name].SetArgs(args)
		return cmds[name].Execute()
	}

	expectQuery := func(question string) {
		mockAnalytics.EXPECT().Event(cfanalytics.QUERY, map[string]interface{}{"query": question})
	}

	It("answers whether a service is available", func() {
		expectQuery("available")
		mockManager.EXPECT().Available("com.example.sleeper").Return(true)

		Expect(run("available", "com.example.sleeper")).To(Succeed())
		Expect(mockUI.WasCalledWith).To(Equal("true"))
	})

	It("answers whether a service is missing", func() {
		expectQuery("missing")
		mockManager.EXPECT().Missing("spongebob").Return(true)

		Expect(run("missing", "spongebob")).To(Succeed())
		Expect(mockUI.WasCalledWith).To(Equal("true"))
	})

	It("answers whether a service is enabled", func() {
		expectQuery("enabled")
		mockManager.EXPECT().Enabled("spongebob").Return(false)

		Expect(run("enabled", "spongebob")).To(Succeed())
		Expect(mockUI.WasCalledWith).To(Equal("false"))
	})

	Describe("disabled", func() {
		It("looks in the system domain by default", func() {
			expectQuery("disabled")
			mockManager.EXPECT().Disabled("com.apple.nfsd", "system").Return(true, nil)

			Expect(run("disabled", "com.apple.nfsd")).To(Succeed())
			Expect(mockUI.WasCalledWith).To(Equal("true"))
		})

		It("looks in the domain given with --domain", func() {
			expectQuery("disabled")
			mockManager.EXPECT().Disabled("com.example.agent", "gui/501").Return(false, nil)

			Expect(run("disabled", "--domain", "gui/501", "com.example.agent")).To(Succeed())
			Expect(mockUI.WasCalledWith).To(Equal("false"))
		})

		It("returns launchctl failures", func() {
			expectQuery("disabled")
			mockManager.EXPECT().Disabled("com.apple.nfsd", "system").Return(false, &launchd.CommandError{SubCommand: "print-disabled", ExitCode: 113})

			Expect(run("disabled", "com.apple.nfsd")).To(MatchError(ContainSubstring("Failed to print-disabled service")))
		})
	})

	It("prints every service one per line", func() {
		expectQuery("get-all")
		mockManager.EXPECT().GetAll().Return([]string{"com.apple.nfsd", "com.example.sleeper"}, nil)

		Expect(run("get-all")).To(Succeed())
		Expect(mockUI.WasCalledWith).To(Equal("com.apple.nfsd\ncom.example.sleeper"))
	})

	It("prints every loaded service one per line", func() {
		expectQuery("get-enabled")
		mockManager.EXPECT().GetEnabled().Return([]string{"com.apple.coreservicesd"}, nil)

		Expect(run("get-enabled")).To(Succeed())
		Expect(mockUI.WasCalledWith).To(Equal("com.apple.coreservicesd"))
	})

	It("rejects arguments to the list queries", func() {
		Expect(run("get-all", "extra")).NotTo(Succeed())
	})
})
