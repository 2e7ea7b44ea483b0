// Command match-operator reconciles AntaresMatch resources into
// Kubernetes Jobs running cmd/antares-replay, the cluster-facing
// counterpart to running a match locally via cmd/antares-demo.
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
	metricsserver "sigs.k8s.io/controller-runtime/pkg/metrics/server"

	antaresv1alpha1 "github.com/antares-engine/antares/api/v1alpha1"
	"github.com/antares-engine/antares/internal/controllers"
	"github.com/antares-engine/antares/internal/corelog"
)

var scheme = runtime.NewScheme()

func init() {
	utilruntime.Must(clientgoscheme.AddToScheme(scheme))
	utilruntime.Must(antaresv1alpha1.AddToScheme(scheme))
}

func main() {
	var metricsAddr string
	var replayImage string
	flag.StringVar(&metricsAddr, "metrics-bind-address", ":8080", "address the metrics endpoint binds to")
	flag.StringVar(&replayImage, "replay-image", "antares-replay:latest", "image used for match Jobs")
	flag.Parse()

	zlog := zerolog.New(os.Stderr).With().Timestamp().Logger()
	corelog.SetLogger(corelog.NewZerologAdapter(zlog))
	ctrl.SetLogger(zap.New())

	mgr, err := ctrl.NewManager(ctrl.GetConfigOrDie(), ctrl.Options{
		Scheme:  scheme,
		Metrics: metricsserver.Options{BindAddress: metricsAddr},
	})
	if err != nil {
		corelog.Error("unable to start manager", corelog.F("error", err))
		os.Exit(1)
	}

	reconciler := &controllers.AntaresMatchReconciler{
		Client: mgr.GetClient(),
		Scheme: mgr.GetScheme(),
		Image:  replayImage,
	}
	if err := reconciler.SetupWithManager(mgr); err != nil {
		corelog.Error("unable to set up AntaresMatch controller", corelog.F("error", err))
		os.Exit(1)
	}

	corelog.Info("starting match operator")
	if err := mgr.Start(ctrl.SetupSignalHandler()); err != nil {
		corelog.Error("manager exited with error", corelog.F("error", err))
		os.Exit(1)
	}
}
