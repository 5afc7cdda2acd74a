package list_test

import (
	"fmt"

	"code.cloudfoundry.org/macsvc/cfanalytics"
	"code.cloudfoundry.org/macsvc/cmd/list"
	"code.cloudfoundry.org/macsvc/cmd/list/mocks"
	"code.cloudfoundry.org/macsvc/errors"
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

var _ = Describe("List", func() {
	var (
		mockController *gomock.Controller
		mockManager    *mocks.MockManager
		mockAnalytics  *mocks.MockAnalytics
		mockUI         *MockUI
		listCmd        *cobra.Command
	)

	BeforeEach(func() {
		mockController = gomock.NewController(GinkgoT())
		mockManager = mocks.NewMockManager(mockController)
		mockAnalytics = mocks.NewMockAnalytics(mockController)
		mockUI = &MockUI{}

		subject := &list.List{
			UI:        mockUI,
			Manager:   mockManager,
			Analytics: mockAnalytics,
		}
		listCmd = subject.Cmd()
		listCmd.SetOutput(GinkgoWriter)
		mockAnalytics.EXPECT().Event(cfanalytics.LIST).AnyTimes()
	})

	AfterEach(func() {
		mockController.Finish()
	})

	It("prints every loaded job when no service is given", func() {
		mockManager.EXPECT().List("").Return("PID\tStatus\tLabel\n-\t0\tcom.example.sleeper", nil)

		listCmd.SetArgs([]string{})
		Expect(listCmd.Execute()).To(Succeed())
		Expect(mockUI.WasCalledWith).To(ContainSubstring("PID"))
	})

	It("prints the record of a single service", func() {
		mockManager.EXPECT().List("com.example.sleeper").Return("{\n\t\"Label\" = \"com.example.sleeper\";\n};", nil)

		listCmd.SetArgs([]string{"com.example.sleeper"})
		Expect(listCmd.Execute()).To(Succeed())
		Expect(mockUI.WasCalledWith).To(HavePrefix("{"))
	})

	It("returns the error from the manager", func() {
		mockManager.EXPECT().List("spongebob").Return("", errors.NotFound("spongebob"))

		listCmd.SetArgs([]string{"spongebob"})
		Expect(listCmd.Execute()).To(MatchError("Service not found: spongebob"))
	})
})
