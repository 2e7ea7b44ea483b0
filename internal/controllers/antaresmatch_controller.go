// Package controllers reconciles AntaresMatch resources into Kubernetes
// Jobs, the way bayleafwalker's WorldShardReconciler materializes
// WorldShard resources for a WorldInstance — one Job per match rather
// than one long-lived pod, since a match has a natural end
// (VerbDeclareWinner fires, or the level's conditions never do and an
// operator kills it).
package controllers

import (
	"context"
	"fmt"

	batchv1 "k8s.io/api/batch/v1"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
	"sigs.k8s.io/controller-runtime/pkg/log"

	antaresv1alpha1 "github.com/antares-engine/antares/api/v1alpha1"
)

const (
	labelManagedBy = "antares.engine/managed-by"
	managedByValue = "antaresmatch-controller"
)

// AntaresMatchReconciler materializes a Job for every AntaresMatch and
// copies the Job's outcome back onto the match's status.
//
// +kubebuilder:rbac:groups=antares.engine,resources=antaresmatches,verbs=get;list;watch;update;patch
// +kubebuilder:rbac:groups=antares.engine,resources=antaresmatches/status,verbs=get;update;patch
// +kubebuilder:rbac:groups=batch,resources=jobs,verbs=get;list;watch;create;update;patch;delete
type AntaresMatchReconciler struct {
	client.Client
	Scheme *runtime.Scheme
	Image  string
}

func (r *AntaresMatchReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	logger := log.FromContext(ctx).WithValues("controller", "AntaresMatch", "match", req.Name)

	var match antaresv1alpha1.AntaresMatch
	if err := r.Get(ctx, req.NamespacedName, &match); err != nil {
		return ctrl.Result{}, client.IgnoreNotFound(err)
	}

	jobName := stableJobName(match.Name)
	var job batchv1.Job
	err := r.Get(ctx, types.NamespacedName{Namespace: req.Namespace, Name: jobName}, &job)
	if apierrors.IsNotFound(err) {
		newJob := r.buildJob(&match, jobName)
		if err := controllerutil.SetControllerReference(&match, newJob, r.Scheme); err != nil {
			return ctrl.Result{}, fmt.Errorf("set owner reference: %w", err)
		}
		if err := r.Create(ctx, newJob); err != nil {
			return ctrl.Result{}, fmt.Errorf("create job %s: %w", jobName, err)
		}
		logger.Info("created match job", "job", jobName)
		match.Status.Phase = "Running"
		match.Status.JobName = jobName
		if err := r.Status().Update(ctx, &match); err != nil {
			return ctrl.Result{}, err
		}
		return ctrl.Result{}, nil
	} else if err != nil {
		return ctrl.Result{}, err
	}

	if job.Status.Succeeded > 0 && match.Status.Phase != "Complete" {
		match.Status.Phase = "Complete"
		if err := r.Status().Update(ctx, &match); err != nil {
			return ctrl.Result{}, err
		}
	} else if job.Status.Failed > 0 && match.Status.Phase != "Failed" {
		match.Status.Phase = "Failed"
		if err := r.Status().Update(ctx, &match); err != nil {
			return ctrl.Result{}, err
		}
	}

	return ctrl.Result{}, nil
}

func (r *AntaresMatchReconciler) buildJob(match *antaresv1alpha1.AntaresMatch, name string) *batchv1.Job {
	backoffLimit := int32(0)
	return &batchv1.Job{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: match.Namespace,
			Labels: map[string]string{
				labelManagedBy: managedByValue,
			},
		},
		Spec: batchv1.JobSpec{
			BackoffLimit: &backoffLimit,
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels: map[string]string{labelManagedBy: managedByValue},
				},
				Spec: corev1.PodSpec{
					RestartPolicy: corev1.RestartPolicyNever,
					Containers: []corev1.Container{
						{
							Name:  "antares-replay",
							Image: r.Image,
							Args: []string{
								"run",
								"--level", match.Spec.LevelDataRef,
								"--seed", fmt.Sprintf("%d", match.Spec.RandomSeed),
							},
						},
					},
				},
			},
		},
	}
}

func stableJobName(matchName string) string {
	return "antaresmatch-" + matchName
}

// SetupWithManager wires the reconciler into mgr, watching AntaresMatch
// and owned Jobs.
func (r *AntaresMatchReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&antaresv1alpha1.AntaresMatch{}).
		Owns(&batchv1.Job{}).
		Complete(r)
}
