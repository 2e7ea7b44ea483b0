package v1alpha1

import "k8s.io/apimachinery/pkg/runtime"

// DeepCopyObject implementations below are ordinarily produced by
// controller-gen from the +kubebuilder:object:root=true markers above;
// written by hand here since no code generator runs as part of this
// build.

func (in *AntaresMatch) DeepCopyObject() runtime.Object {
	out := new(AntaresMatch)
	*out = *in
	out.ObjectMeta = *in.ObjectMeta.DeepCopy()
	return out
}

func (in *AntaresMatchList) DeepCopyObject() runtime.Object {
	out := new(AntaresMatchList)
	out.TypeMeta = in.TypeMeta
	out.ListMeta = *in.ListMeta.DeepCopy()
	if in.Items != nil {
		out.Items = make([]AntaresMatch, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
	return out
}

func (in *AntaresMatch) DeepCopyInto(out *AntaresMatch) {
	*out = *in
	out.ObjectMeta = *in.ObjectMeta.DeepCopy()
}
