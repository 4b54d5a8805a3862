package usecase

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"testing"

	"service_inventory/internal/domain/entities"
	"service_inventory/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestWorkflowUseCase_UpsertProcessStep(t *testing.T) {
	ctx := context.Background()

	t.Run("creates unknown nodes on demand", func(t *testing.T) {
		env := newTestEnv(t)
		o := env.createCustomOrder(t)

		o, err := env.workflow.UpsertProcessStep(ctx, o.OrderID, ProcessStepInput{
			ProcessName:    "Warranty Check",
			SubProcessName: "Inspect Parts",
			Patch:          entities.SubProcessPatch{IsCompleted: ptr(true)},
		})
		require.NoError(t, err)
		require.Len(t, o.Processes, 8)

		p := processByKey(t, o, "warranty_check")
		assert.Equal(t, "Warranty Check", p.Name.In(entities.LangEN))
		require.Len(t, p.SubProcesses, 1)
		assert.Equal(t, "inspect_parts", p.SubProcesses[0].Key)
		assert.Equal(t, entities.ProcessStatusCompleted, p.Status)
	})

	t.Run("matches processes by any label", func(t *testing.T) {
		env := newTestEnv(t)
		o := env.createCustomOrder(t)
		tpl, err := env.catalog.FindByName(ctx, entities.ProcessOrderExecution)
		require.NoError(t, err)
		tamil := tpl.ProcessName.In(entities.LangTA)
		require.NotEmpty(t, tamil)

		o, err = env.workflow.UpsertProcessStep(ctx, o.OrderID, ProcessStepInput{
			ProcessName:    tamil,
			SubProcessName: entities.SubJobExecution,
			Patch:          entities.SubProcessPatch{JobExecution: ptr(entities.JobExecutionProcessing)},
		})
		require.NoError(t, err)
		require.Len(t, o.Processes, 7)
		_, sp := o.FindSubProcess(entities.ProcessOrderExecution, entities.SubJobExecution)
		require.NotNil(t, sp)
		assert.Equal(t, entities.JobExecutionProcessing, sp.JobExecution)
		assert.False(t, sp.IsCompleted)
	})

	t.Run("reopening a step reverts a completed process", func(t *testing.T) {
		env := newTestEnv(t)
		o := env.createCustomOrder(t)
		o, err := env.assignment.AssignTechnicians(ctx, o.OrderID, []string{technicianA})
		require.NoError(t, err)
		require.Equal(t, entities.ProcessStatusCompleted, processByKey(t, o, entities.ProcessTechnicianAllocation).Status)

		o, err = env.workflow.UpsertProcessStep(ctx, o.OrderID, ProcessStepInput{
			ProcessName:    entities.ProcessTechnicianAllocation,
			SubProcessName: entities.SubAssignTechnician,
			Patch:          entities.SubProcessPatch{IsCompleted: ptr(false)},
		})
		require.NoError(t, err)
		p := processByKey(t, o, entities.ProcessTechnicianAllocation)
		assert.Equal(t, entities.ProcessStatusInProgress, p.Status)
		assert.Nil(t, p.CompletedAt)
		assertRollUpInvariant(t, o)
	})

	t.Run("rejects invalid input before loading", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.workflow.UpsertProcessStep(ctx, "ORD-2025-01", ProcessStepInput{SubProcessName: "x"})
		assert.ErrorIs(t, err, ErrProcessNameRequired)

		_, err = env.workflow.UpsertProcessStep(ctx, "ORD-2025-01", ProcessStepInput{
			ProcessName: entities.ProcessOrderExecution,
			Patch:       entities.SubProcessPatch{JobExecution: ptr("done")},
		})
		assert.ErrorIs(t, err, entities.ErrInvalidJobExecution)
		assert.ErrorIs(t, err, pkg.ErrInvalidArgument)
	})
}

func TestWorkflowUseCase_ConcurrentStepUpdates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	o := env.createCustomOrder(t)
	initial := o.Version

	const n = 16
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := env.workflow.UpsertProcessStep(ctx, o.OrderID, ProcessStepInput{
				ProcessName:    "Warranty Check",
				SubProcessName: fmt.Sprintf("Step %d", i),
				Patch:          entities.SubProcessPatch{IsCompleted: ptr(true)},
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	stored, err := env.order.GetOrder(ctx, o.OrderID)
	require.NoError(t, err)
	assert.Equal(t, initial+n, stored.Version)
	p := processByKey(t, stored, "warranty_check")
	require.Len(t, p.SubProcesses, n)
	for i := 0; i < n; i++ {
		assert.NotNil(t, p.FindSubProcess(fmt.Sprintf("step_%d", i)), "step %d lost", i)
	}
	assert.Equal(t, entities.ProcessStatusCompleted, p.Status)
}

func TestWorkflowUseCase_ManagedStepsRefused(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	o := env.createCustomOrder(t)

	for _, step := range []struct{ process, sub string }{
		{entities.ProcessSiteVisit, entities.SubArrivalConfirmation},
		{entities.ProcessIssueAnalysis, entities.SubInitialObservation},
		{entities.ProcessAdminReviewBOM, entities.SubMaterialEstimation},
		{entities.ProcessAdminReviewBOM, entities.SubBOMPreparation},
		{entities.ProcessQuotationApproval, entities.SubApprovalConfirmation},
	} {
		_, err := env.workflow.UpsertProcessStep(ctx, o.OrderID, ProcessStepInput{
			ProcessName:    step.process,
			SubProcessName: step.sub,
			Patch:          entities.SubProcessPatch{IsCompleted: ptr(true)},
		})
		assert.ErrorIs(t, err, ErrManagedStep, step.sub)
		assert.ErrorIs(t, err, pkg.ErrForbidden, step.sub)
	}

	stored, err := env.order.GetOrder(ctx, o.OrderID)
	require.NoError(t, err)
	assert.Equal(t, o.Version, stored.Version)
	assert.False(t, stored.SubProcessCompleted(entities.ProcessSiteVisit, entities.SubArrivalConfirmation))
	assert.False(t, stored.SubProcessCompleted(entities.ProcessQuotationApproval, entities.SubApprovalConfirmation))
}

func TestWorkflowUseCase_ArrivalOTP(t *testing.T) {
	ctx := context.Background()

	t.Run("verify before generate", func(t *testing.T) {
		env := newTestEnv(t)
		o := env.createCustomOrder(t)
		_, err := env.workflow.VerifyArrivalOTP(ctx, testAdmin, o.OrderID, "1234")
		assert.ErrorIs(t, err, ErrOTPNotGenerated)
		assert.ErrorIs(t, err, pkg.ErrPreconditionFailed)

		_, err = env.workflow.GetArrivalOTP(ctx, testCustomer, o.OrderID)
		assert.ErrorIs(t, err, ErrOTPNotGenerated)
	})

	t.Run("empty code", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.workflow.VerifyArrivalOTP(ctx, testTechnician, "ORD-2025-01", " ")
		assert.ErrorIs(t, err, ErrOTPRequired)
	})

	t.Run("code is only readable by the order's customer", func(t *testing.T) {
		env := newTestEnv(t)
		o := env.createCustomOrder(t)
		_, err := env.assignment.AssignTechnicians(ctx, o.OrderID, []string{technicianA})
		require.NoError(t, err)
		o, err = env.workflow.GenerateArrivalOTP(ctx, testTechnician, o.OrderID)
		require.NoError(t, err)

		code, err := env.workflow.GetArrivalOTP(ctx, testCustomer, o.OrderID)
		require.NoError(t, err)
		assert.Equal(t, "1234", code)

		stranger := entities.Principal{UserID: "cust-2", Role: entities.RoleCustomer}
		_, err = env.workflow.GetArrivalOTP(ctx, stranger, o.OrderID)
		assert.ErrorIs(t, err, ErrOrderNotOwned)
		_, err = env.workflow.GetArrivalOTP(ctx, testTechnician, o.OrderID)
		assert.ErrorIs(t, err, ErrOrderNotOwned)

		_, err = env.workflow.VerifyArrivalOTP(ctx, testTechnician, o.OrderID, code)
		require.NoError(t, err)
		_, err = env.workflow.GetArrivalOTP(ctx, testCustomer, o.OrderID)
		assert.ErrorIs(t, err, ErrOTPNotGenerated)
	})

	t.Run("unassigned technician is refused", func(t *testing.T) {
		env := newTestEnv(t)
		o := env.createCustomOrder(t)
		outsider := entities.Principal{UserID: technicianB, Role: entities.RoleTechnician}

		_, err := env.workflow.GenerateArrivalOTP(ctx, testTechnician, o.OrderID)
		assert.ErrorIs(t, err, ErrNotAssigned)

		_, err = env.assignment.AssignTechnicians(ctx, o.OrderID, []string{technicianA})
		require.NoError(t, err)
		_, err = env.workflow.GenerateArrivalOTP(ctx, outsider, o.OrderID)
		assert.ErrorIs(t, err, ErrNotAssigned)
		assert.ErrorIs(t, err, pkg.ErrForbidden)

		_, err = env.workflow.GenerateArrivalOTP(ctx, testTechnician, o.OrderID)
		require.NoError(t, err)
		_, err = env.workflow.VerifyArrivalOTP(ctx, outsider, o.OrderID, "1234")
		assert.ErrorIs(t, err, ErrNotAssigned)
		_, err = env.workflow.VerifyArrivalOTP(ctx, testTechnician, o.OrderID, "1234")
		require.NoError(t, err)
		_, err = env.workflow.RecordInitialObservation(ctx, outsider, o.OrderID, "report")
		assert.ErrorIs(t, err, ErrNotAssigned)

		stored, err := env.order.GetOrder(ctx, o.OrderID)
		require.NoError(t, err)
		assert.False(t, stored.SubProcessCompleted(entities.ProcessIssueAnalysis, entities.SubInitialObservation))
	})

	t.Run("regenerating discards the verification", func(t *testing.T) {
		env := newTestEnv(t)
		o := env.createCustomOrder(t)
		_, err := env.workflow.GenerateArrivalOTP(ctx, testAdmin, o.OrderID)
		require.NoError(t, err)
		_, err = env.workflow.VerifyArrivalOTP(ctx, testAdmin, o.OrderID, "1234")
		require.NoError(t, err)

		env.workflow.otp = func() (string, error) { return "5678", nil }
		o, err = env.workflow.GenerateArrivalOTP(ctx, testAdmin, o.OrderID)
		require.NoError(t, err)
		code, err := env.workflow.GetArrivalOTP(ctx, testCustomer, o.OrderID)
		require.NoError(t, err)
		assert.Equal(t, "5678", code)
		_, sp := o.FindSubProcess(entities.ProcessSiteVisit, entities.SubArrivalConfirmation)
		assert.False(t, sp.IsVerified)
		assert.False(t, sp.IsCompleted)

		_, err = env.workflow.VerifyArrivalOTP(ctx, testAdmin, o.OrderID, "1234")
		assert.ErrorIs(t, err, ErrOTPMismatch)
	})
}

func TestWorkflowUseCase_ScheduleAndReport(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	o := env.createCustomOrder(t)

	_, err := env.workflow.ScheduleVisit(ctx, o.OrderID, "2025-07-02", "")
	require.ErrorIs(t, err, ErrScheduleRequired)

	o, err = env.workflow.ScheduleVisit(ctx, o.OrderID, "2025-07-02", "10:30")
	require.NoError(t, err)
	_, sp := o.FindSubProcess(entities.ProcessSiteVisit, entities.SubScheduleVisit)
	assert.Equal(t, "2025-07-02", sp.ScheduledDate)
	assert.Equal(t, "10:30", sp.ScheduledTime)
	assert.True(t, sp.IsCompleted)

	_, err = env.workflow.RecordInitialObservation(ctx, testTechnician, o.OrderID, "  ")
	require.ErrorIs(t, err, ErrReportRequired)

	o, err = env.workflow.MarkTechnicianReportReceived(ctx, o.OrderID)
	require.NoError(t, err)
	assert.True(t, o.SubProcessCompleted(entities.ProcessAdminReviewBOM, entities.SubReceiveTechnicianReport))
	assert.Equal(t, entities.ProcessStatusInProgress, processByKey(t, o, entities.ProcessAdminReviewBOM).Status)
}

func TestGenerateOTP(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := generateOTP()
		require.NoError(t, err)
		require.Len(t, code, 4)
		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1000)
		assert.LessOrEqual(t, n, 9999)
	}
}
